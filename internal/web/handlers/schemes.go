package handlers

import (
	"net/http"

	"github.com/samber/lo"

	greekutils "github.com/mkarajohn/greek-text-utils"
)

type schemeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ignore      bool   `json:"ignore"`
}

type schemesResponse struct {
	Schemes []schemeResponse `json:"schemes"`
}

// ListSchemes serves the scheme registry.
func ListSchemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schemesResponse{
		Schemes: lo.Map(greekutils.Schemes(), func(s greekutils.SchemeInfo, _ int) schemeResponse {
			return schemeResponse{Name: string(s.Name), Description: s.Description, Ignore: s.Ignore}
		}),
	})
}
