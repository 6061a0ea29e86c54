package catalog

import (
	"context"
	"fmt"

	"tokbot/internal/core/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Postgres implements the catalog store over the stored functions of the
// bot's database. Result shapes are normalized here: absent rows become the
// domain sentinel errors, so core logic never inspects store responses.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog database: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) RandomVideo(ctx context.Context) (string, error) {
	var url string

	result := p.db.WithContext(ctx).Raw("SELECT get_random_video()").Scan(&url)
	if result.Error != nil {
		return "", fmt.Errorf("failed to get random video: %w", result.Error)
	}
	if url == "" {
		return "", domain.ErrNoVideoFound
	}

	return url, nil
}

func (p *Postgres) RandomVideoForSource(ctx context.Context, source string) (string, error) {
	var url string

	result := p.db.WithContext(ctx).Raw("SELECT get_random_user_video(?)", source).Scan(&url)
	if result.Error != nil {
		return "", fmt.Errorf("failed to get random video for source: %w", result.Error)
	}
	if url == "" {
		return "", domain.ErrNoVideoFound
	}

	return url, nil
}

func (p *Postgres) DeleteVideo(ctx context.Context, url string) error {
	result := p.db.WithContext(ctx).Exec("SELECT delete_video(?)", url)
	if result.Error != nil {
		return fmt.Errorf("failed to delete video: %w", result.Error)
	}

	return nil
}

func (p *Postgres) InactivateVideo(ctx context.Context, url string) error {
	result := p.db.WithContext(ctx).Exec("SELECT inactive_video(?)", url)
	if result.Error != nil {
		return fmt.Errorf("failed to inactivate video: %w", result.Error)
	}

	return nil
}

func (p *Postgres) AddSource(ctx context.Context, name string) (string, error) {
	var confirmation string

	result := p.db.WithContext(ctx).Raw("SELECT add_tiktok_user(?)", name).Scan(&confirmation)
	if result.Error != nil {
		return "", fmt.Errorf("failed to add source: %w", result.Error)
	}

	return confirmation, nil
}

func (p *Postgres) ChatIDs(ctx context.Context) ([]int64, error) {
	var ids []int64

	result := p.db.WithContext(ctx).Raw("SELECT chat_id FROM get_list_chat_id()").Scan(&ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list chats: %w", result.Error)
	}

	return ids, nil
}

func (p *Postgres) UpsertChatUser(ctx context.Context, chatID int64, userID int64) error {
	result := p.db.WithContext(ctx).Exec("SELECT add_chat_id_and_user_id(?, ?)", chatID, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to upsert chat user: %w", result.Error)
	}

	return nil
}

func (p *Postgres) UserRole(ctx context.Context, userID int64) (domain.Role, error) {
	var role string

	result := p.db.WithContext(ctx).
		Raw("SELECT roles FROM get_current_tele_user_info(?)", userID).Scan(&role)
	if result.Error != nil {
		return "", fmt.Errorf("failed to get user role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", domain.ErrUserNotFound
	}

	return domain.Role(role), nil
}
