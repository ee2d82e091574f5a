package rules

import (
	"github.com/donaldgifford/hbslint/internal/rules/render"
)

func init() {
	RegisterRule(&render.TemplateRenderFormat{})
}
