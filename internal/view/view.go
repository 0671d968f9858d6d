package view

// View is a named template together with the variables assigned to it.
type View struct {
	name string
	vars map[string]any
}

// New returns an empty view for the template at pages/<name>.html
func New(name string) *View {
	return &View{name: name, vars: make(map[string]any)}
}

func (v *View) Name() string {
	return v.name
}

// Set assigns a template variable and returns the view for chaining
func (v *View) Set(key string, value any) *View {
	v.vars[key] = value
	return v
}

func (v *View) Get(key string) (any, bool) {
	val, ok := v.vars[key]
	return val, ok
}
