package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/scratchcard/internal/scratch"
)

type CardParamsDTO struct {
	Rows     int `schema:"rows"`
	Cols     int `schema:"cols"`
	WinCount int `schema:"win_count"`
}

// ParseCardParamsDTO reads card params from a query string. Keys that are
// missing keep the values from defaults.
func ParseCardParamsDTO(src map[string][]string, defaults scratch.Params) (scratch.Params, error) {
	dto := CardParamsDTO(defaults)
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return scratch.Params(dto), err
}

type CardFrameDTO struct {
	View     *scratch.View `json:"view"`
	Revealed []int         `json:"revealed,omitempty"`
}
