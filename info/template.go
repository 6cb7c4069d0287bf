package info

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"
)

// UIType selects the viewer rendered by Docs.
type UIType string

const (
	UIStoplight UIType = "stoplight"
	UIScalar    UIType = "scalar"
	UISwaggerUI UIType = "swaggerui"
	UIRedoc     UIType = "redoc"
)

var (
	//go:embed assets/stoplight.html
	openapiHTMLStoplight string
	//go:embed assets/scalar.html
	openapiHTMLScalar string
	//go:embed assets/swaggerui.html
	openapiHTMLSwaggerUI string
	//go:embed assets/redoc.html
	openapiHTMLRedoc string
)

var (
	templateStoplight = template.Must(template.New("openapi-stoplight").Parse(openapiHTMLStoplight))
	templateScalar    = template.Must(template.New("openapi-scalar").Parse(openapiHTMLScalar))
	templateSwaggerUI = template.Must(template.New("openapi-swaggerui").Parse(openapiHTMLSwaggerUI))
	templateRedoc     = template.Must(template.New("openapi-redoc").Parse(openapiHTMLRedoc))
)

// ParseUIType maps a configuration value onto a UIType. The empty string
// selects Stoplight.
func ParseUIType(value string) (UIType, error) {
	switch UIType(strings.ToLower(strings.TrimSpace(value))) {
	case "", UIStoplight:
		return UIStoplight, nil
	case UIScalar:
		return UIScalar, nil
	case UISwaggerUI:
		return UISwaggerUI, nil
	case UIRedoc:
		return UIRedoc, nil
	default:
		return "", fmt.Errorf("unknown docs ui %q", value)
	}
}

func templateFor(uiType UIType) *template.Template {
	switch uiType {
	case UIScalar:
		return templateScalar
	case UISwaggerUI:
		return templateSwaggerUI
	case UIRedoc:
		return templateRedoc
	default:
		return templateStoplight
	}
}
