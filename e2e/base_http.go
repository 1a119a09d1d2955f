package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// BaseHTTPSuite is the shared harness for end-to-end runs against a live
// server. It logs in once per suite and replays the bearer token on every
// call.
type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	Client *http.Client
	Token  string
}

// SetupSuite loads the environment configuration and authenticates.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.Client = &http.Client{Timeout: 10 * time.Second}

	body := s.Call(s.T(), http.MethodPost, "/api/v1/login", map[string]string{
		"username": s.Config.Username,
		"password": s.Config.Password,
	}, nil)

	var login struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(body, &login))
	s.Require().True(login.Success)
	s.Token = login.Data.Token
}

// Call issues one request against the server, with colorized step headers
// and optional JSON body dumps controlled by the environment.
func (s *BaseHTTPSuite) Call(t *testing.T, method, path string, payload any, wantStatus *int) []byte {
	header := fmt.Sprintf("  ====== %s %s ======", method, path)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(data)
		if s.Config.DebugJSON {
			t.Log("REQUEST:", string(data))
		}
	}

	req, err := http.NewRequest(method, s.Config.BaseURL+path, reqBody)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	start := time.Now()
	resp, err := s.Client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	t.Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		t.Log("RESPONSE:", string(body))
	}

	if wantStatus != nil {
		s.Require().Equal(*wantStatus, resp.StatusCode)
	}
	return body
}
