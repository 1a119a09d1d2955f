//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

// BoardSuite exercises the happy path against a live server:
// list areas, create a gated pair, complete it, and watch progress move.
type BoardSuite struct {
	BaseHTTPSuite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) TestAreasAndGating() {
	body := s.Call(s.T(), http.MethodGet, "/api/v1/project-areas", nil, lo.ToPtr(http.StatusOK))

	var areas struct {
		Success bool `json:"success"`
		Data    []struct {
			ID       string `json:"id"`
			Progress int    `json:"progress"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(body, &areas))
	s.Require().True(areas.Success)
	s.Require().Len(areas.Data, 5)

	body = s.Call(s.T(), http.MethodPost, "/api/v1/subpoints/ai", map[string]string{
		"title": "e2e: first step",
	}, lo.ToPtr(http.StatusOK))

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(body, &created))

	body = s.Call(s.T(), http.MethodPost, "/api/v1/subpoints/ai", map[string]string{
		"title":     "e2e: gated step",
		"dependsOn": created.Data.ID,
	}, lo.ToPtr(http.StatusOK))

	var gated struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(body, &gated))

	// Gated task cannot complete before its dependency.
	s.Call(s.T(), http.MethodPost, togglePath(gated.Data.ID), nil, lo.ToPtr(http.StatusConflict))
	s.Call(s.T(), http.MethodPost, togglePath(created.Data.ID), nil, lo.ToPtr(http.StatusOK))
	s.Call(s.T(), http.MethodPost, togglePath(gated.Data.ID), nil, lo.ToPtr(http.StatusOK))
}

// togglePath rebuilds the route for "subpoint:{areaId}:{ts}"; the API
// splits the identifier across two path segments.
func togglePath(id string) string {
	parts := strings.Split(id, ":")
	return "/api/v1/subpoints/" + parts[1] + "/" + parts[2] + "/toggle"
}
