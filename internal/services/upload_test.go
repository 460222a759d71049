package services_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/job-analyzer/internal/models"
	"alfredoptarigan/job-analyzer/internal/services"
)

// newFileHeader builds a FileHeader the same way a parsed multipart form would.
func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["resume"][0]
}

func TestReadUpload_NilHeader(t *testing.T) {
	svc := services.NewUploadService(1024)

	req, err := svc.ReadUpload(nil)

	require.NoError(t, err)
	assert.Empty(t, req.Data)
}

func TestReadUpload_BuffersFile(t *testing.T) {
	svc := services.NewUploadService(1024)
	fh := newFileHeader(t, "cv.pdf", models.PDFContentType, []byte("%PDF-1.4 content"))

	req, err := svc.ReadUpload(fh)

	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", req.Filename)
	assert.Equal(t, models.PDFContentType, req.ContentType)
	assert.Equal(t, []byte("%PDF-1.4 content"), req.Data)
}

func TestReadUpload_TooLarge(t *testing.T) {
	svc := services.NewUploadService(4)
	fh := newFileHeader(t, "cv.pdf", models.PDFContentType, []byte("12345"))

	req, err := svc.ReadUpload(fh)

	assert.Nil(t, req)
	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, models.CodeFileTooLarge, verr.Code)
}
