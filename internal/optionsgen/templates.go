package optionsgen

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"last":  func(i int, params []Param) bool { return i == len(params)-1 },
	"lower": func(s string) string { return strings.ToLower(s[:1]) + s[1:] },
}

var fileTemplate = template.Must(template.New("file").Funcs(funcs).Parse(`package {{ .Package }}

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)
{{ range .Ops }}{{ $op := . }}
// -----------------------------------------------------
// {{ .Title }}
// -----------------------------------------------------

var {{ lower .Name }}Operation = &core.Operation{
	ID:     "{{ .ID }}",
	Method: http.{{ .Method }},
	Path:   "{{ .Path }}",
	Fields: []core.Field{
{{- range .Params }}
		{Name: "{{ .Field.Name }}", Wire: "{{ .Field.Wire }}", In: {{ .InName }}{{ if .Field.Required }}, Required: true{{ end }}},
{{- end }}
	},
}

// {{ .Name }}Operation returns a copy of the descriptor of {{ .Verb }} {{ .Path }}.
func {{ .Name }}Operation() *core.Operation {
	return {{ lower .Name }}Operation.Clone()
}

// {{ .Name }}Options holds the parameters of a {{ .ID }} call.
// It is immutable; build one with New{{ .Name }}OptionsBuilder.
// The zero value holds no parameters.
type {{ .Name }}Options struct {
	opts *core.Options
}

// {{ .Name }}OptionsBuilder stages {{ .Name }}Options. The zero value is an empty builder.
type {{ .Name }}OptionsBuilder struct {
	b *core.Builder
}

// New{{ .Name }}OptionsBuilder returns a builder with the required parameters set.
func New{{ .Name }}OptionsBuilder({{ range $i, $p := .Required }}{{ if $i }}, {{ end }}{{ $p.ArgName }} {{ $p.GoType }}{{ end }}) *{{ .Name }}OptionsBuilder {
{{- if .Required }}
	return new({{ .Name }}OptionsBuilder).
{{- range $i, $p := .Required }}
		{{ $p.GoName }}({{ $p.ArgName }}){{ if not (last $i $op.Required) }}.{{ end }}
{{- end }}
{{- else }}
	return new({{ .Name }}OptionsBuilder)
{{- end }}
}

func (b *{{ .Name }}OptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder({{ lower .Name }}Operation)
	}
	return b.b
}
{{ range .Params }}
// {{ .GoName }} sets {{ .Field.Wire }}.{{ if .Doc }} {{ .Doc }}{{ end }}
func (b *{{ $op.Name }}OptionsBuilder) {{ .GoName }}({{ .ArgName }} {{ .GoType }}) *{{ $op.Name }}OptionsBuilder {
	b.builder().Set("{{ .Field.Wire }}", {{ .ArgName }})
	return b
}
{{ end }}
// Clear unsets the given parameters, named by wire name.
func (b *{{ .Name }}OptionsBuilder) Clear(wireNames ...string) *{{ .Name }}OptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable {{ .Name }}Options.
func (b *{{ .Name }}OptionsBuilder) Build() (*{{ .Name }}Options, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &{{ .Name }}Options{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *{{ .Name }}Options) NewBuilder() *{{ .Name }}OptionsBuilder {
	return &{{ .Name }}OptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *{{ .Name }}Options) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *{{ .Name }}Options) String() string {
	return o.opts.String()
}
{{ range .Params }}{{ if .Field.Required }}
// {{ .GoName }} returns {{ .Field.Wire }}.
func (o *{{ $op.Name }}Options) {{ .GoName }}() {{ .GoType }} {
	return core.Require[{{ .GoType }}](o.opts, "{{ .Field.Wire }}")
}
{{ else }}
// {{ .GoName }} returns {{ .Field.Wire }}, unset when it was not supplied.
func (o *{{ $op.Name }}Options) {{ .GoName }}() core.Optional[{{ .GoType }}] {
	return core.Get[{{ .GoType }}](o.opts, "{{ .Field.Wire }}")
}
{{ end }}{{ end }}
// {{ .Name }} performs {{ .Verb }} {{ .Path }}.{{ if .Summary }}
//
// {{ .Summary }}{{ end }}
{{- if .Response }}
func (s *Service) {{ .Name }}(ctx context.Context, opts *{{ .Name }}Options, headers ...http.Header) (*{{ .Response }}, error) {
	var result {{ .Response }}
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
{{- else }}
func (s *Service) {{ .Name }}(ctx context.Context, opts *{{ .Name }}Options, headers ...http.Header) error {
	return s.invoke(ctx, opts.Options(), headers, nil)
}
{{- end }}
{{ end }}`))

var operationsTemplate = template.Must(template.New("operations").Parse(`package {{ .Package }}

import "github.com/watson-developer-cloud/assistant-go-sdk/core"

// Operations returns a copy of the descriptor of every operation of the service.
func Operations() []*core.Operation {
	return []*core.Operation{
{{- range .Ops }}
		{{ .Name }}Operation(),
{{- end }}
	}
}
`))
