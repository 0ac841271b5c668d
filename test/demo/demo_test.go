//go:build integration_test

package demo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080/v1"

// Walks the onboarding flow against a running server: register, log in, take
// the cohort quiz, then take and submit a challenge test.
func TestOnboardingFlow(t *testing.T) {
	hc := &http.Client{Timeout: 10 * time.Second}
	email := fmt.Sprintf("demo-%s@example.com", uuid.NewString()[:8])

	// Register
	{
		var resp struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
		}
		post(t, hc, "/accounts/register", "", map[string]any{
			"email":        email,
			"password":     "demo-password",
			"full_name":    "Demo Student",
			"student_type": "Future",
		}, http.StatusCreated, &resp)
		require.Equal(t, email, resp.User.Email)
	}

	// Login
	var token string
	{
		var resp struct {
			Token string `json:"token"`
		}
		post(t, hc, "/accounts/login", "", map[string]any{
			"email":    email,
			"password": "demo-password",
		}, http.StatusOK, &resp)
		require.NotEmpty(t, resp.Token)
		token = resp.Token
	}

	// Take the quiz, answering everything with the first choice's category
	{
		var quiz struct {
			Questions []struct {
				QuestionID string `json:"question_id"`
				Choices    []struct {
					Category string `json:"category"`
				} `json:"choices"`
			} `json:"questions"`
		}
		get(t, hc, "/quiz", token, http.StatusOK, &quiz)
		require.NotEmpty(t, quiz.Questions)

		answers := map[string]string{}
		for _, q := range quiz.Questions {
			answers[q.QuestionID] = q.Choices[0].Category
		}

		var rec struct {
			Cohorts []string `json:"cohorts"`
			Message string   `json:"message"`
		}
		post(t, hc, "/quiz/answers", token, map[string]any{"answers": answers}, http.StatusOK, &rec)
		require.NotEmpty(t, rec.Cohorts)
		t.Logf("recommendation: %s", rec.Message)
	}

	// Take a challenge test, answering everything with the first option
	{
		var built struct {
			SessionID string `json:"session_id"`
			Questions []struct {
				QuestionID string `json:"question_id"`
				Options    []struct {
					Key string `json:"key"`
				} `json:"options"`
			} `json:"questions"`
		}
		get(t, hc, "/challenge/cloud", token, http.StatusOK, &built)
		require.NotEmpty(t, built.Questions)

		answers := map[string]string{}
		for _, q := range built.Questions {
			answers[q.QuestionID] = q.Options[0].Key
		}

		var graded struct {
			Score   int    `json:"score"`
			Total   int    `json:"total"`
			Percent string `json:"percent"`
		}
		post(t, hc, "/challenge/answers", token, map[string]any{
			"session_id": built.SessionID,
			"answers":    answers,
		}, http.StatusOK, &graded)
		require.Equal(t, len(built.Questions), graded.Total)
		t.Logf("challenge graded: %d/%d (%s%%)", graded.Score, graded.Total, graded.Percent)
	}
}

func get(t *testing.T, hc *http.Client, path, token string, wantStatus int, out any) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)
	send(t, hc, req, token, wantStatus, out)
}

func post(t *testing.T, hc *http.Client, path, token string, body any, wantStatus int, out any) {
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	send(t, hc, req, token, wantStatus, out)
}

func send(t *testing.T, hc *http.Client, req *http.Request, token string, wantStatus int, out any) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode, "%s %s", req.Method, req.URL.Path)

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}
