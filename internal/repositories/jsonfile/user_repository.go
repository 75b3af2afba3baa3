package jsonfile

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
)

type userRepository struct {
	store *Store
}

func newUserRepository(store *Store) portsrepo.UserRepositoryFacade {
	return &userRepository{store: store}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func toJSONUser(d domain.User) jsonUser {
	return jsonUser{
		UserID:                 d.UserID,
		Name:                   d.Name,
		Email:                  d.Email,
		AuthProvider:           string(d.AuthProvider),
		PasswordHash:           d.PasswordHash,
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		jsonAudit: jsonAudit{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainUser(j jsonUser) domain.User {
	return domain.User{
		UserID:                 j.UserID,
		Name:                   j.Name,
		Email:                  j.Email,
		AuthProvider:           domain.AuthProvider(j.AuthProvider),
		PasswordHash:           j.PasswordHash,
		RefreshTokenHash:       j.RefreshTokenHash,
		RefreshTokenExpiryTime: j.RefreshTokenExpiryTime,
		AuditFields: domain.AuditFields{
			CreatedAt:     j.CreatedAt,
			CreatedBy:     j.CreatedBy,
			LastUpdatedAt: j.LastUpdatedAt,
			LastUpdatedBy: j.LastUpdatedBy,
		},
	}
}

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	return r.store.update(func(doc *document) error {
		for _, j := range doc.Users {
			if j.UserID == user.UserID || j.Email == user.Email {
				return apperrors.ErrDuplicate
			}
		}
		doc.Users = append(doc.Users, toJSONUser(user))
		return nil
	})
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var found *domain.User
	err := r.store.read(func(doc *document) error {
		for _, j := range doc.Users {
			if j.UserID == userID {
				d := toDomainUser(j)
				found = &d
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var found *domain.User
	err := r.store.read(func(doc *document) error {
		for _, j := range doc.Users {
			if j.Email == email {
				d := toDomainUser(j)
				found = &d
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return r.store.update(func(doc *document) error {
		for i, j := range doc.Users {
			if j.UserID == user.UserID {
				doc.Users[i] = toJSONUser(user)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}
