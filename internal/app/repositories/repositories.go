package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}

// Repositories holds all the repository instances
type Repositories struct {
	MemberRepository        *MemberRepository
	EventRepository         *EventRepository
	ExecutiveRepository     *ExecutiveRepository
	ClassLeaderRepository   *ClassLeaderRepository
	ResourceRepository      *ResourceRepository
	MessageRepository       *MessageRepository
	CommunicationRepository *CommunicationRepository
	AdminRepository         *AdminRepository
	CarouselRepository      *CarouselRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		MemberRepository:        NewMemberRepository(db),
		EventRepository:         NewEventRepository(db),
		ExecutiveRepository:     NewExecutiveRepository(db),
		ClassLeaderRepository:   NewClassLeaderRepository(db),
		ResourceRepository:      NewResourceRepository(db),
		MessageRepository:       NewMessageRepository(db),
		CommunicationRepository: NewCommunicationRepository(db),
		AdminRepository:         NewAdminRepository(db),
		CarouselRepository:      NewCarouselRepository(db),
	}
}
