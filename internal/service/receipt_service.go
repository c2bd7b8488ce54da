package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"grana/internal/dto"
	"grana/internal/models"
	"grana/internal/receipt"
	"grana/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

var supportedReceiptFormats = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// ReceiptService runs uploaded receipts through the recognition pipeline and
// optionally books the extracted amount as a transaction.
type ReceiptService struct {
	processor    *receipt.Processor
	txRepo       *repository.TransactionRepository
	categoryRepo *repository.CategoryRepository
	uploadDir    string
	logger       *zap.Logger
}

func NewReceiptService(
	processor *receipt.Processor,
	txRepo *repository.TransactionRepository,
	categoryRepo *repository.CategoryRepository,
	uploadDir string,
	logger *zap.Logger,
) *ReceiptService {
	return &ReceiptService{
		processor:    processor,
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		uploadDir:    uploadDir,
		logger:       logger,
	}
}

// Process recognizes the receipt and, when an amount was extracted, creates
// a transaction dated today in a default category of the detected type.
func (s *ReceiptService) Process(ctx context.Context, userID uuid.UUID, src io.Reader, filename string) (*dto.ProcessReceiptResponse, error) {
	result, err := s.recognize(ctx, src, filename)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProcessReceiptResponse{
		Success:   true,
		Resultado: result,
	}

	if result.Valor == nil {
		resp.Mensagem = "Não foi possível identificar o valor no comprovante"
		return resp, nil
	}

	tx, err := s.createTransaction(ctx, userID, result)
	if err != nil {
		// The extraction succeeded; report it even when booking failed.
		s.logger.Error("Failed to create transaction from receipt",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		resp.Mensagem = "Comprovante processado, mas a transação não pôde ser criada"
		return resp, nil
	}

	resp.Transacao = &dto.CreatedTransaction{
		ID:        tx.ID.String(),
		Descricao: tx.Descricao,
		Valor:     tx.Valor,
		Tipo:      string(tx.Tipo),
	}
	return resp, nil
}

// Preview recognizes the receipt without creating a transaction.
func (s *ReceiptService) Preview(ctx context.Context, userID uuid.UUID, src io.Reader, filename string) (*dto.ProcessReceiptResponse, error) {
	result, err := s.recognize(ctx, src, filename)
	if err != nil {
		return nil, err
	}

	return &dto.ProcessReceiptResponse{
		Success:   true,
		Resultado: result,
	}, nil
}

func (s *ReceiptService) recognize(ctx context.Context, src io.Reader, filename string) (*receipt.Result, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !supportedReceiptFormats[ext] {
		return nil, ErrUnsupportedFormat
	}

	path, err := s.saveUpload(src, ext)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return s.processor.Process(ctx, path)
}

// saveUpload writes the stream under the upload directory with a random
// name; the caller removes the file when done.
func (s *ReceiptService) saveUpload(src io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	path := filepath.Join(s.uploadDir, uuid.New().String()+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

func (s *ReceiptService) createTransaction(ctx context.Context, userID uuid.UUID, result *receipt.Result) (*models.Transaction, error) {
	tipo := result.Tipo
	if !tipo.Valid() {
		tipo = models.TypeDespesa
	}

	var categoriaID *uuid.UUID
	if cat, err := s.categoryRepo.FirstByTipo(ctx, userID, tipo); err == nil {
		categoriaID = &cat.ID
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoriaID: categoriaID,
		Tipo:        tipo,
		Descricao:   result.Descricao,
		Valor:       *result.Valor,
		Data:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
