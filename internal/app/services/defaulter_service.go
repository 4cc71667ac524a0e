package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/db"
	"github.com/swapnilk/acadesk/internal/pkg/email"
	"github.com/swapnilk/acadesk/internal/pkg/filestorage"
	"github.com/swapnilk/acadesk/internal/pkg/letters"
	"github.com/swapnilk/acadesk/internal/pkg/logger"
)

// lettersSubdir is the storage subdirectory for generated notices,
// served statically under the same path.
const lettersSubdir = "letters"

// DefaulterService defines the interface for defaulter letter
// operations
type DefaulterService interface {
	GenerateLetters(ctx context.Context, generatedBy int64, req dto.GenerateLettersRequest) ([]dto.GeneratedLetter, error)
	GetLetters(ctx context.Context, filter dto.DefaulterLetterFilter) ([]*models.DefaulterLetter, error)
}

type defaulterServiceImpl struct {
	db               *db.PostgresDB
	attendanceRepo   *repositories.AttendanceRepository
	letterRepo       *repositories.DefaulterLetterRepository
	storage          filestorage.FileStorage
	emailService     email.EmailService
	defaultThreshold float64
}

// NewDefaulterService creates a new defaulter service instance
func NewDefaulterService(
	database *db.PostgresDB,
	attendanceRepo *repositories.AttendanceRepository,
	letterRepo *repositories.DefaulterLetterRepository,
	storage filestorage.FileStorage,
	emailService email.EmailService,
	defaultThreshold float64,
) DefaulterService {
	return &defaulterServiceImpl{
		db:               database,
		attendanceRepo:   attendanceRepo,
		letterRepo:       letterRepo,
		storage:          storage,
		emailService:     emailService,
		defaultThreshold: defaultThreshold,
	}
}

// GenerateLetters finds every student whose attendance for the period
// falls strictly below the threshold, renders one PDF notice per
// (student, subject) pair, and records the letters in a single
// transaction. Returns an empty slice when nobody is below the
// threshold.
//
// Regeneration for the same period overwrites both the PDF file and
// the letter row, so repeating a request does not accumulate
// duplicates.
func (s *defaulterServiceImpl) GenerateLetters(ctx context.Context, generatedBy int64, req dto.GenerateLettersRequest) ([]dto.GeneratedLetter, error) {
	threshold := s.defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	defaulters, err := s.attendanceRepo.GetDefaulters(ctx, req.Month, req.Year, threshold)
	if err != nil {
		return nil, err
	}
	if len(defaulters) == 0 {
		return nil, nil
	}

	generated := make([]dto.GeneratedLetter, 0, len(defaulters))
	letterRows := make([]*models.DefaulterLetter, 0, len(defaulters))
	for _, d := range defaulters {
		data, err := letters.Render(letters.Letter{
			StudentName: d.StudentName,
			PRN:         d.PRN,
			SubjectName: d.SubjectName,
			SubjectCode: d.SubjectCode,
			Month:       req.Month,
			Year:        req.Year,
			Percentage:  d.AttendancePercentage,
		})
		if err != nil {
			return nil, err
		}

		filename := letters.FileName(d.PRN, d.SubjectCode, req.Month, req.Year)
		filePath, err := s.storage.SaveBytes(data, lettersSubdir, filename)
		if err != nil {
			return nil, err
		}

		letterRows = append(letterRows, &models.DefaulterLetter{
			StudentID:   d.StudentID,
			SubjectID:   d.SubjectID,
			Month:       req.Month,
			Year:        req.Year,
			GeneratedBy: generatedBy,
			FilePath:    filePath,
		})
		generated = append(generated, dto.GeneratedLetter{
			StudentID:            d.StudentID,
			StudentName:          d.StudentName,
			Subject:              d.SubjectName,
			AttendancePercentage: d.AttendancePercentage,
			LetterPath:           filePath,
		})
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, row := range letterRows {
			if err := s.letterRepo.UpsertTx(ctx, tx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notices are best-effort; a mail failure never fails the request
	for _, d := range defaulters {
		if d.StudentEmail == "" {
			continue
		}
		if err := s.emailService.SendDefaulterNotice(
			d.StudentEmail, d.StudentName, d.SubjectName,
			req.Month, req.Year, d.AttendancePercentage,
		); err != nil {
			logger.Warn().Err(err).
				Str("email", d.StudentEmail).
				Str("subject", d.SubjectCode).
				Msg("Failed to send defaulter notice")
		}
	}

	return generated, nil
}

// GetLetters retrieves generated letters matching the optional filters
func (s *defaulterServiceImpl) GetLetters(ctx context.Context, filter dto.DefaulterLetterFilter) ([]*models.DefaulterLetter, error) {
	return s.letterRepo.GetAll(ctx, filter)
}
