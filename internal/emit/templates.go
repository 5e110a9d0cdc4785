package emit

import "text/template"

const header = "// Code generated by modweld; DO NOT EDIT.\n"

var tmplComposition = template.Must(template.New("composition").Parse(header + `
package {{.Package}}

import (
{{- range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)

// Init invokes every discovered library contribution in deterministic
// order, then registers and configures the application contribution.
func Init(reg {{.KitAlias}}.Registry) {
{{- range .Libraries}}
	new({{.}}).Register(reg)
{{- end}}
	app := new({{.App}})
	app.Register(reg)
	app.Configure(reg)
}
`))

var tmplOptions = template.Must(template.New("options").Parse(header + `
package {{.Package}}

import (
{{- range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)

// Options extends the base builder with every extension-contributed method.
type Options struct {
	{{.KitAlias}}.Options
}

// NewOptions returns an empty Options builder.
func NewOptions() *Options {
	return &Options{}
}
{{range .Methods}}
// {{.GoName}} applies the '{{.RawName}}' contribution from {{.Extension}}.
func (o *Options) {{.GoName}}({{.Args}}) *Options {
	{{.ExtensionRef}}{}.{{.GoName}}(&o.Options{{.CallArgs}})
	return o
}

// With{{.GoName}} is the static form of {{.GoName}}.
func With{{.GoName}}({{.Args}}) *Options {
	return NewOptions().{{.GoName}}({{.ArgNames}})
}
{{end}}`))

var tmplManager = template.Must(template.New("manager").Parse(header + `
package {{.Package}}

import (
{{- range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)

// Manager extends the base manager with one entry point per type-returning
// contribution.
type Manager struct {
	{{.KitAlias}}.Manager
}

// NewManager returns a new generated Manager.
func NewManager() *Manager {
	return &Manager{}
}
{{range .Methods}}
// {{.GoName}} starts a request producing {{.Target}}.
func (m *Manager) {{.GoName}}({{.Args}}) *{{$.KitAlias}}.Request {
	req := m.NewRequest({{printf "%q" .Target}})
	{{.ExtensionRef}}{}.{{.GoName}}(req.Options{{.CallArgs}})
	return req
}
{{end}}`))

var tmplManagerFactory = template.Must(template.New("factory").Parse(header + `
package {{.Package}}

import (
{{- range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)

// managerFactory produces the generated Manager.
type managerFactory struct{}

// Build implements {{.KitAlias}}.ManagerFactory.
func (managerFactory) Build() any {
	return NewManager()
}

// NewManagerFactory returns a factory producing the generated Manager.
func NewManagerFactory() {{.KitAlias}}.ManagerFactory {
	return managerFactory{}
}
`))

var tmplFacade = template.Must(template.New("facade").Parse(header + `
package {{.Package}}

import (
{{- range .Imports}}
	{{.Alias}} "{{.Path}}"
{{- end}}
)
{{range .Methods}}
// {{.GoName}} is the static form of Manager.{{.GoName}}.
func {{.GoName}}({{.Args}}) *{{$.KitAlias}}.Request {
	return NewManager().{{.GoName}}({{.ArgNames}})
}
{{end}}`))
