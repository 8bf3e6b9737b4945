package webserver_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mtorres82/tensio/internal/store"
	"github.com/mtorres82/tensio/internal/webserver"
	"github.com/spf13/afero"
)

const dataPath = "bp_data.csv"

func bootstrapApp(fs afero.Fs) *fiber.App {
	repo := store.NewCSV(fs, dataPath)

	return webserver.New(webserver.Config{
		Version:       "test",
		RollingWindow: 7,
	}, repo)
}

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Redirect if the user tries to access the root URL", "/", http.StatusFound},
		{"Page loads successfully in english", "/en", http.StatusOK},
		{"Page loads successfully in spanish", "/es", http.StatusOK},
		{"Restore page loads successfully", "/en/restore", http.StatusOK},
		{"Trend chart loads successfully", "/charts/trend", http.StatusOK},
		{"Scatter chart loads successfully", "/charts/scatter", http.StatusOK},
		{"Server returns not found for an unknown URL", "/xx", http.StatusNotFound},
	}

	app := bootstrapApp(afero.NewMemMapFs())

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tcase.url, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Errorf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}
}

func TestLoadWarningOnMalformedRows(t *testing.T) {
	fs := afero.NewMemMapFs()
	contents := "timestamp,systolic,diastolic,pulse,notes\n" +
		"2026-08-19 09:00:00,130,85,,\n" +
		"2026-08-20 09:00:00,high,80,70,\n"
	if err := afero.WriteFile(fs, dataPath, []byte(contents), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	app := bootstrapApp(fs)

	req, _ := http.NewRequest(http.MethodGet, "/en", nil)
	response, err := app.Test(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	body, _ := io.ReadAll(response.Body)
	if !strings.Contains(string(body), "1 rows couldn't be read and were skipped.") {
		t.Error("Expected a skipped rows warning on the dashboard")
	}
}

func postForm(app *fiber.App, target string, values url.Values) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return app.Test(req)
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return string(body)
}

func getBody(t *testing.T, app *fiber.App, target string) string {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	response, err := app.Test(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	return string(body)
}
