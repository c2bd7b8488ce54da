package receipt

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type fakeEngine struct {
	text  string
	err   error
	paths []string
}

func (f *fakeEngine) Recognize(_ context.Context, path string) (string, error) {
	f.paths = append(f.paths, path)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestProcessExtractsFields(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeTestPNG(t, dir, "nota.png")

	engine := &fakeEngine{text: "Cupom fiscal\nSupermercado XYZ\nTOTAL: R$ 57,30"}
	p := NewProcessor(engine, nil, zap.NewNop())

	res, err := p.Process(context.Background(), imgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Valor == nil || *res.Valor != 57.30 {
		t.Errorf("valor: got %v, want 57.30", res.Valor)
	}
	if res.Confianca != 0.8 {
		t.Errorf("confianca: got %v, want 0.8", res.Confianca)
	}
	if res.Texto != engine.text {
		t.Errorf("texto not carried through: %q", res.Texto)
	}
}

func TestProcessUsesNormalizedImage(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeTestPNG(t, dir, "nota.png")

	engine := &fakeEngine{text: "qualquer texto"}
	p := NewProcessor(engine, nil, zap.NewNop())

	if _, err := p.Process(context.Background(), imgPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(engine.paths) != 1 {
		t.Fatalf("engine called %d times, want 1", len(engine.paths))
	}
	if engine.paths[0] == imgPath {
		t.Error("engine received the original image instead of the normalized copy")
	}
}

func TestProcessCleansUpNormalizedArtifact(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeTestPNG(t, dir, "nota.png")

	engine := &fakeEngine{text: "texto"}
	p := NewProcessor(engine, nil, zap.NewNop())

	if _, err := p.Process(context.Background(), imgPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	processedPath := filepath.Join(dir, "processed-nota.png")
	if _, err := os.Stat(processedPath); !os.IsNotExist(err) {
		t.Errorf("normalized artifact %s was not removed", processedPath)
	}
	if _, err := os.Stat(imgPath); err != nil {
		t.Errorf("original image should be untouched: %v", err)
	}
}

func TestProcessCleansUpOnEngineFailure(t *testing.T) {
	dir := t.TempDir()
	imgPath := writeTestPNG(t, dir, "nota.png")

	engine := &fakeEngine{err: errors.New("engine down")}
	p := NewProcessor(engine, nil, zap.NewNop())

	_, err := p.Process(context.Background(), imgPath)
	if !errors.Is(err, ErrRecognitionFailed) {
		t.Fatalf("got %v, want ErrRecognitionFailed", err)
	}

	processedPath := filepath.Join(dir, "processed-nota.png")
	if _, err := os.Stat(processedPath); !os.IsNotExist(err) {
		t.Errorf("normalized artifact %s was not removed after failure", processedPath)
	}
}

func TestProcessFallsBackWhenPreprocessingFails(t *testing.T) {
	dir := t.TempDir()
	// Not a real image: preprocessing cannot open it.
	badPath := filepath.Join(dir, "nota.jpg")
	if err := os.WriteFile(badPath, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := &fakeEngine{text: "texto bruto sem normalizacao aplicada"}
	p := NewProcessor(engine, nil, zap.NewNop())

	res, err := p.Process(context.Background(), badPath)
	if err != nil {
		t.Fatalf("preprocessing failure must not surface: %v", err)
	}
	if engine.paths[0] != badPath {
		t.Errorf("engine should receive the original path, got %s", engine.paths[0])
	}
	if res.Confianca != 0.5 {
		t.Errorf("confianca: got %v, want 0.5", res.Confianca)
	}
}

func TestProcessRoutesPDFToPDFEngine(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "nota.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}

	imageEngine := &fakeEngine{text: "should not be used"}
	pdfEngine := &fakeEngine{text: "NOTA FISCAL\nValor: R$ 20,00"}
	p := NewProcessor(imageEngine, pdfEngine, zap.NewNop())

	res, err := p.Process(context.Background(), pdfPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(imageEngine.paths) != 0 {
		t.Error("image engine must not be called for PDF input")
	}
	if len(pdfEngine.paths) != 1 || pdfEngine.paths[0] != pdfPath {
		t.Errorf("pdf engine calls: %v", pdfEngine.paths)
	}
	if res.Valor == nil || *res.Valor != 20.00 {
		t.Errorf("valor: got %v, want 20.00", res.Valor)
	}
}
