/*
Package view loads and renders the HTML templates of the site.

Templates live in an fs.FS laid out as:

	layouts/<name>.html   page shells, rendered around a content view
	pages/<name>.html     content views, addressed by path without ".html"
	partials/<name>.html  shared {{define}} blocks available to every template

A View is a template name plus the variables assigned to it. RenderLayout
renders the content view first and hands the result to the layout as the
"content" variable, so controllers only assign variables and never call the
layout themselves.

All output goes through html/template, which escapes every interpolated value
for the context it appears in.
*/
package view
