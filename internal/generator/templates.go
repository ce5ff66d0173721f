package generator

// declarationTemplate renders one builder function. Slots are described on
// declarationData.
const declarationTemplate = `fun {{generics .Generics}}{{.Receiver}}.{{quote .Property}}(block: {{.BlockType}}.() -> Unit = {}) {
{{- if .Initialize}}
{{.Indent}}if (this.{{quote .Property}} == null) {
{{.Indent}}{{.Indent}}this.{{quote .Property}} = {{.ValueType}}()
{{.Indent}}}
{{- end}}
{{.Indent}}this.{{quote .Property}}.block()
}
`
