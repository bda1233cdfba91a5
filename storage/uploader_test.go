package storage

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	_ = w.Close()

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["file"][0]
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestValidateImageOK(t *testing.T) {
	header := makeFileHeader(t, "a.png", "image/png", pngBytes(t, 32, 16))

	content, cfg, format, err := ValidateImage(header)
	if err != nil {
		t.Fatalf("ValidateImage: %v", err)
	}
	if len(content) == 0 {
		t.Error("内容为空")
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if cfg.Width != 32 || cfg.Height != 16 {
		t.Errorf("尺寸 = %dx%d, want 32x16", cfg.Width, cfg.Height)
	}
}

func TestValidateImageRejectsDeclaredType(t *testing.T) {
	// 声明类型不在白名单内，即使内容是合法 PNG 也拒绝
	header := makeFileHeader(t, "a.svg", "image/svg+xml", pngBytes(t, 4, 4))

	if _, _, _, err := ValidateImage(header); err == nil {
		t.Fatal("期望拒绝 image/svg+xml")
	}
}

func TestValidateImageRejectsFakeContent(t *testing.T) {
	// 声明 PNG，内容是文本
	header := makeFileHeader(t, "a.png", "image/png", []byte("<script>alert(1)</script>"))

	if _, _, _, err := ValidateImage(header); err == nil {
		t.Fatal("期望拒绝非图片内容")
	}
}

func TestValidateImageRejectsOversize(t *testing.T) {
	big := make([]byte, maxImageSize+1)
	copy(big, pngBytes(t, 4, 4))

	header := makeFileHeader(t, "a.png", "image/png", big)
	if _, _, _, err := ValidateImage(header); err == nil {
		t.Fatal("期望拒绝超大文件")
	}
}

func TestDataURI(t *testing.T) {
	uri := DataURI(pngBytes(t, 4, 4))
	if got, want := uri[:15], "data:image/png;"; got != want {
		t.Errorf("前缀 = %q, want %q", got, want)
	}
}
