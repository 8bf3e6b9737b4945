package webserver_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
)

const seedDataset = "timestamp,systolic,diastolic,pulse,notes\n" +
	"2026-08-19 09:00:00,130,85,,\n" +
	"2026-08-20 09:00:00,120,80,70,morning\n"

func TestDownload(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, dataPath, []byte(seedDataset), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	app := bootstrapApp(fs)

	req, _ := http.NewRequest(http.MethodGet, "/download", nil)
	response, err := app.Test(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	if response.StatusCode != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
	}
	if contentType := response.Header.Get(fiber.HeaderContentType); contentType != "text/csv" {
		t.Errorf("Expected content type text/csv, got %q", contentType)
	}
	if disposition := response.Header.Get(fiber.HeaderContentDisposition); !strings.HasPrefix(disposition, "attachment") {
		t.Errorf("Expected an attachment disposition, got %q", disposition)
	}

	// download must be byte-identical to the backing file
	if body := readBody(t, response); body != seedDataset {
		t.Errorf("Expected the download to match the dataset file, got %q", body)
	}
}

func uploadCSV(app *fiber.App, target, contents string) (*http.Response, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("filename", "backup.csv")
	if err != nil {
		return nil, err
	}
	if _, err = part.Write([]byte(contents)); err != nil {
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return app.Test(req)
}

func TestRestore(t *testing.T) {
	t.Run("Merges an uploaded backup and reports counts", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, dataPath, []byte(seedDataset), 0644); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		app := bootstrapApp(fs)

		upload := "timestamp,systolic,diastolic,pulse,notes\n" +
			"2026-08-20 09:00:00,120,80,70,morning\n" + // already present
			"2026-08-21 09:00:00,140,90,,\n"

		response, err := uploadCSV(app, "/en/restore", upload)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, response.StatusCode)
		}
		if body := readBody(t, response); !strings.Contains(body, "Imported 1 new readings, 3 in total.") {
			t.Errorf("Expected an import summary, got %q", body)
		}
	})

	t.Run("Rejects a backup with unknown columns", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, dataPath, []byte(seedDataset), 0644); err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		app := bootstrapApp(fs)

		response, err := uploadCSV(app, "/en/restore", "date,sys,dia,hr,comment\n2026-08-21 09:00:00,140,90,,\n")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, response.StatusCode)
		}

		// the dataset is untouched
		contents, err := afero.ReadFile(fs, dataPath)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if string(contents) != seedDataset {
			t.Error("Expected the dataset to remain untouched after a rejected restore")
		}
	})

	t.Run("Rejects a submission without a file", func(t *testing.T) {
		app := bootstrapApp(afero.NewMemMapFs())

		req, _ := http.NewRequest(http.MethodPost, "/en/restore", nil)
		response, err := app.Test(req)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, response.StatusCode)
		}
	})
}

func TestClear(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, dataPath, []byte(seedDataset), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	app := bootstrapApp(fs)

	req, _ := http.NewRequest(http.MethodPost, "/clear", nil)
	response, err := app.Test(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if response.StatusCode != http.StatusFound {
		t.Fatalf("Expected status %d, got %d", http.StatusFound, response.StatusCode)
	}

	contents, err := afero.ReadFile(fs, dataPath)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if string(contents) != "timestamp,systolic,diastolic,pulse,notes\n" {
		t.Errorf("Expected a header-only dataset after clearing, got %q", contents)
	}
}
