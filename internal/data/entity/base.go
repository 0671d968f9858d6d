package entity

// Entities lists every model the schema migration creates
func Entities() []interface{} {
	return []interface{}{
		&Review{},
	}
}
