package remote

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/luis-epic/el-point-ai/internal/config"
	"github.com/luis-epic/el-point-ai/internal/domain"
	"github.com/luis-epic/el-point-ai/internal/domain/repository"
	apperrors "github.com/luis-epic/el-point-ai/internal/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const pgUniqueViolation = "23505"

func newUserID() string {
	return uuid.New().String()
}

type store struct {
	db     *DB
	auth   config.AuthConfig
	logger *zap.Logger
}

// NewStore - удалённая реализация хранилища поверх управляемого Postgres.
// Аутентификация по таблице users (bcrypt) с выдачей JWT.
func NewStore(db *DB, auth config.AuthConfig, logger *zap.Logger) repository.Store {
	return &store{
		db:     db,
		auth:   auth,
		logger: logger,
	}
}

func (s *store) IsRemote() bool {
	return true
}

// ==========================================
// Аутентификация
// ==========================================

// GetUser в удалённом режиме не восстанавливает сессию между рестартами:
// клиенты повторно аутентифицируются по токену
func (s *store) GetUser(ctx context.Context) (*domain.UserProfile, error) {
	return nil, nil
}

func (s *store) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if !strings.Contains(email, "@") {
		return nil, apperrors.ErrInvalidEmail
	}

	var row struct {
		domain.UserProfile
		PasswordHash string `db:"password_hash"`
	}
	err := s.db.GetContext(ctx, &row,
		`SELECT id, email, password_hash, name, avatar_url, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrAuthFailed
	}
	if err != nil {
		s.logger.Error("Failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("select user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrAuthFailed
	}

	return s.newSession(&row.UserProfile)
}

func (s *store) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	if !strings.Contains(email, "@") {
		return nil, apperrors.ErrInvalidEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	name := strings.SplitN(email, "@", 2)[0]
	user := domain.UserProfile{
		ID:       newUserID(),
		Email:    email,
		Name:     &name,
		JoinedAt: time.Now(),
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, string(hash), user.Name, user.JoinedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.ErrEmailTaken
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// Регистрация прошла, но пользователя отдавать нельзя, пока email
	// не подтверждён - возвращаем объясняющую ошибку вместо профиля
	if s.auth.RequireConfirmation {
		return nil, apperrors.ErrConfirmationRequired
	}

	return s.newSession(&user)
}

func (s *store) SignOut(ctx context.Context) error {
	// Серверного состояния сессии нет, токен просто перестаёт использоваться
	return nil
}

func (s *store) newSession(user *domain.UserProfile) (*domain.Session, error) {
	token, err := issueToken(user, s.auth.SigningKey, s.auth.TokenTTL)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, err
	}
	return &domain.Session{User: *user, AccessToken: token}, nil
}

// ==========================================
// Избранное
// ==========================================

// GetFavorites возвращает всю таблицу избранного в порядке добавления.
// Выборка не ограничена текущим пользователем: известный пробел
// эталонного поведения, не исправляем без уточнения семантики.
func (s *store) GetFavorites(ctx context.Context) ([]domain.DirectoryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, address, latitude, longitude, description, rating,
		        maps_uri, tags, image_url, user_notes, reviews
		 FROM favorites
		 ORDER BY position`,
	)
	if err != nil {
		s.logger.Error("Failed to query favorites", zap.Error(err))
		return nil, fmt.Errorf("select favorites: %w", err)
	}
	defer rows.Close()

	items := []domain.DirectoryItem{}
	for rows.Next() {
		var item domain.DirectoryItem
		var tags pq.StringArray
		var reviews []byte

		err := rows.Scan(
			&item.ID, &item.Name, &item.Address, &item.Latitude, &item.Longitude,
			&item.Description, &item.Rating, &item.MapsURI, &tags,
			&item.ImageURL, &item.UserNotes, &reviews,
		)
		if err != nil {
			s.logger.Error("Failed to scan favorite", zap.Error(err))
			return nil, fmt.Errorf("scan favorite: %w", err)
		}

		item.Tags = []string(tags)
		if len(reviews) > 0 {
			if err := json.Unmarshal(reviews, &item.Reviews); err != nil {
				s.logger.Error("Failed to unmarshal reviews", zap.String("id", item.ID), zap.Error(err))
			}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorites: %w", err)
	}

	return items, nil
}

// AddFavorite - upsert по id: конфликт обновляет запись, не трогая position,
// поэтому порядок вставки сохраняется и обновление заметок идёт тем же путём
func (s *store) AddFavorite(ctx context.Context, item domain.DirectoryItem) error {
	var reviews []byte
	if len(item.Reviews) > 0 {
		data, err := json.Marshal(item.Reviews)
		if err != nil {
			return fmt.Errorf("marshal reviews: %w", err)
		}
		reviews = data
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites
		   (id, name, address, latitude, longitude, description, rating,
		    maps_uri, tags, image_url, user_notes, reviews)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name,
		   address = excluded.address,
		   latitude = excluded.latitude,
		   longitude = excluded.longitude,
		   description = excluded.description,
		   rating = excluded.rating,
		   maps_uri = excluded.maps_uri,
		   tags = excluded.tags,
		   image_url = excluded.image_url,
		   user_notes = excluded.user_notes,
		   reviews = excluded.reviews`,
		item.ID, item.Name, item.Address, item.Latitude, item.Longitude,
		item.Description, item.Rating, item.MapsURI, pq.Array(item.Tags),
		item.ImageURL, item.UserNotes, reviews,
	)
	if err != nil {
		s.logger.Error("Failed to upsert favorite", zap.String("id", item.ID), zap.Error(err))
		return fmt.Errorf("upsert favorite: %w", err)
	}
	return nil
}

func (s *store) RemoveFavorite(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id); err != nil {
		s.logger.Error("Failed to delete favorite", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

// ==========================================
// История
// ==========================================

// GetHistory в удалённом режиме всегда возвращает пустой список:
// серверное хранение истории не реализовано (документированное ограничение)
func (s *store) GetHistory(ctx context.Context) ([]domain.HistoryItem, error) {
	return []domain.HistoryItem{}, nil
}

func (s *store) AddToHistory(ctx context.Context, item domain.DirectoryItem) error {
	return nil
}

func (s *store) UpdateHistoryNote(ctx context.Context, id, note string) error {
	return nil
}
