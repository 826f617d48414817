package services

import (
	"context"
	"time"

	"afpromotion_server/database"
	"afpromotion_server/lib"
	"afpromotion_server/structs"
	"afpromotion_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CustomerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCustomerService(logger *gecho.Logger, db *database.DB) *CustomerService {
	return &CustomerService{
		logger: logger,
		db:     db,
	}
}

// GetOrCreateByUserId resolves the customer profile for a login identity,
// creating an empty one on first use. Exactly one customer exists per user.
func (cs *CustomerService) GetOrCreateByUserId(ctx context.Context, userId uuid.UUID) (*tables.Customer, error) {
	customer, err := database.Query[tables.Customer](cs.db).
		Where("user_id", userId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if customer != nil {
		return customer, nil
	}

	customer = &tables.Customer{
		Id:        uuid.New(),
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	customer, err = database.Query[tables.Customer](cs.db).Insert(ctx, customer)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		// Another request created the profile first; fetch theirs.
		if lib.IsUniqueViolation(mappedErr) {
			existing, fetchErr := database.Query[tables.Customer](cs.db).
				Where("user_id", userId).
				First(ctx)
			if fetchErr != nil {
				return nil, lib.MapPgError(fetchErr)
			}
			return existing, nil
		}

		cs.logger.Error("Failed to create customer profile",
			gecho.Field("error", mappedErr),
			gecho.Field("user_id", userId))
		return nil, mappedErr
	}

	cs.logger.Debug("Customer profile created", gecho.Field("customer_id", customer.Id), gecho.Field("user_id", userId))

	return customer, nil
}

// GetWithUser returns the customer with its user relation preloaded
func (cs *CustomerService) GetWithUser(ctx context.Context, customerId uuid.UUID) (*tables.Customer, error) {
	customer, err := database.Query[tables.Customer](cs.db).
		With("User").
		Where("c.id", customerId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if customer == nil {
		return nil, lib.ErrNotFound
	}
	return customer, nil
}

// UpdateProfile applies a profile edit to both the customer row and the
// user's name and email fields.
func (cs *CustomerService) UpdateProfile(ctx context.Context, customer *tables.Customer, req *structs.ProfileUpdateRequest) error {
	_, err := database.Query[tables.Customer](cs.db).
		Where("id", customer.Id).
		Update(ctx, map[string]any{
			"phone":       req.Phone,
			"address":     req.Address,
			"city":        req.City,
			"province":    req.Province,
			"postal_code": req.PostalCode,
			"updated_at":  time.Now(),
		})
	if err != nil {
		return lib.MapPgError(err)
	}

	_, err = database.Query[tables.User](cs.db).
		Where("id", customer.UserId).
		Update(ctx, map[string]any{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"email":      req.Email,
		})
	if err != nil {
		return lib.MapPgError(err)
	}

	cs.logger.Info("Customer profile updated", gecho.Field("customer_id", customer.Id))

	return nil
}
