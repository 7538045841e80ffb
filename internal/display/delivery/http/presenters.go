package http

import (
	"fmt"

	"preference-service/internal/display"
	"preference-service/internal/model"
	"preference-service/pkg/preference"
)

type resolveReq struct {
	Preference string `form:"preference"`
}

func (r resolveReq) toInput() (display.ResolveInput, error) {
	if r.Preference == "" {
		return display.ResolveInput{}, nil
	}
	mode, err := model.ParseDisplayMode(r.Preference)
	if err != nil {
		return display.ResolveInput{}, fmt.Errorf("%w: %v", display.ErrInvalidMode, err)
	}
	return display.ResolveInput{Preference: preference.Some(mode)}, nil
}

type resolveResp struct {
	Mode      model.DisplayMode `json:"mode"`
	Source    string            `json:"source"`
	TimeOfDay string            `json:"time_of_day,omitempty"`
}

func (h *handler) newResolveResp(out display.ResolveOutput) resolveResp {
	resp := resolveResp{
		Mode:   out.Mode,
		Source: string(out.Source),
	}
	if p, ok := out.Period.Get(); ok {
		resp.TimeOfDay = p.String()
	}
	return resp
}
