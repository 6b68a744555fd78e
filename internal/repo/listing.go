package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/rental-marketplace/backend/internal/domain"
)

// ListingRepo defines the persistence operations for listings.
type ListingRepo interface {
	// Create inserts a draft listing from u and returns the stored record.
	Create(ctx context.Context, u domain.ListingUpdate) (domain.Listing, error)

	// GetByID returns domain.ErrNotFound if no listing has that ID.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error)

	// Update applies the non-nil fields of u. PublicData keys are merged into
	// the stored public data.
	Update(ctx context.Context, id uuid.UUID, u domain.ListingUpdate) (domain.Listing, error)

	// SetState moves a listing to state.
	SetState(ctx context.Context, id uuid.UUID, state domain.ListingState) (domain.Listing, error)

	// ListPaged returns one page of listings matching f and the total count.
	ListPaged(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error)
}

type pgListingRepo struct {
	db db
}

// NewListingRepo constructs a ListingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewListingRepo(db db) ListingRepo {
	return &pgListingRepo{db: db}
}

const listingColumns = `id, title, description, state, listing_type, public_data, images,
		availability_plan, price_amount, price_currency, created_at, updated_at`

// Create inserts a new listing row. New listings are always drafts.
func (r *pgListingRepo) Create(ctx context.Context, u domain.ListingUpdate) (domain.Listing, error) {
	const q = `
		INSERT INTO listings (title, description, listing_type, public_data, images,
		                      availability_plan, price_amount, price_currency)
		VALUES (COALESCE(@title::text, ''),
		        COALESCE(@description::text, ''),
		        COALESCE(@listing_type::text, ''),
		        COALESCE(@public_data::jsonb, '{}'::jsonb),
		        COALESCE(@images::text[], '{}'),
		        @availability_plan::jsonb,
		        @price_amount::bigint,
		        @price_currency::text)
		RETURNING ` + listingColumns

	args, err := updateArgs(u)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.Create: %w", err)
	}

	result, err := scanListing(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a listing by primary key.
func (r *pgListingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	const q = `SELECT ` + listingColumns + ` FROM listings WHERE id = @id`

	result, err := scanListing(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.GetByID: %w", err)
	}
	return result, nil
}

// Update overwrites the supplied columns and merges public data one level deep.
func (r *pgListingRepo) Update(ctx context.Context, id uuid.UUID, u domain.ListingUpdate) (domain.Listing, error) {
	const q = `
		UPDATE listings
		SET title             = COALESCE(@title::text, title),
		    description       = COALESCE(@description::text, description),
		    listing_type      = COALESCE(@listing_type::text, listing_type),
		    public_data       = public_data || COALESCE(@public_data::jsonb, '{}'::jsonb),
		    images            = COALESCE(@images::text[], images),
		    availability_plan = COALESCE(@availability_plan::jsonb, availability_plan),
		    price_amount      = COALESCE(@price_amount::bigint, price_amount),
		    price_currency    = COALESCE(@price_currency::text, price_currency),
		    updated_at        = now()
		WHERE id = @id
		RETURNING ` + listingColumns

	args, err := updateArgs(u)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.Update: %w", err)
	}
	args["id"] = id

	result, err := scanListing(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.Update: %w", err)
	}
	return result, nil
}

// SetState changes the lifecycle state of a listing.
func (r *pgListingRepo) SetState(ctx context.Context, id uuid.UUID, state domain.ListingState) (domain.Listing, error) {
	const q = `
		UPDATE listings
		SET state = @state, updated_at = now()
		WHERE id = @id
		RETURNING ` + listingColumns

	result, err := scanListing(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "state": string(state)}))
	if err != nil {
		return domain.Listing{}, fmt.Errorf("repo.ListingRepo.SetState: %w", err)
	}
	return result, nil
}

// listingFilterSQL is shared by the page query and the count query. A
// maxUsingTimeADay that is not a JSON number never matches a range filter.
const listingFilterSQL = `
		WHERE (@state::text IS NULL OR state = @state::text)
		  AND (@listing_type::text IS NULL OR listing_type = @listing_type::text)
		  AND (@min_using::int IS NULL OR
		       CASE WHEN jsonb_typeof(public_data->'maxUsingTimeADay') = 'number'
		            THEN (public_data->>'maxUsingTimeADay')::numeric BETWEEN @min_using::int AND @max_using::int
		            ELSE false
		       END)`

// ListPaged returns one page of listings, newest first.
func (r *pgListingRepo) ListPaged(ctx context.Context, f domain.ListingFilter, p domain.Page) ([]domain.Listing, int64, error) {
	const countQ = `SELECT count(*) FROM listings` + listingFilterSQL
	const pageQ = `SELECT ` + listingColumns + ` FROM listings` + listingFilterSQL + `
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"state":        (*string)(nil),
		"listing_type": (*string)(nil),
		"min_using":    (*int)(nil),
		"max_using":    (*int)(nil),
	}
	if f.State != nil {
		s := string(*f.State)
		args["state"] = &s
	}
	if f.ListingType != nil {
		lt := string(*f.ListingType)
		args["listing_type"] = &lt
	}
	if f.MaxUsingTimeADay != nil {
		args["min_using"] = &f.MaxUsingTimeADay.Min
		args["max_using"] = &f.MaxUsingTimeADay.Max
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: count: %w", err)
	}

	args["limit"] = p.Limit
	args["offset"] = p.Offset()
	rows, err := r.db.Query(ctx, pageQ, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: scan: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ListingRepo.ListPaged: rows: %w", err)
	}
	return listings, total, nil
}

// updateArgs maps an update payload to named args. Nil fields become NULL so
// the COALESCE in each query keeps the stored value.
func updateArgs(u domain.ListingUpdate) (pgx.NamedArgs, error) {
	args := pgx.NamedArgs{
		"title":             u.Title,
		"description":       u.Description,
		"listing_type":      (*string)(nil),
		"public_data":       []byte(nil),
		"images":            []string(nil),
		"availability_plan": []byte(nil),
		"price_amount":      (*int64)(nil),
		"price_currency":    (*string)(nil),
	}
	if u.ListingType != nil {
		lt := string(*u.ListingType)
		args["listing_type"] = &lt
	}
	if u.PublicData != nil {
		b, err := json.Marshal(u.PublicData)
		if err != nil {
			return nil, fmt.Errorf("encode public data: %w", err)
		}
		args["public_data"] = b
	}
	if u.Images != nil {
		images := make([]string, len(u.Images))
		for i, id := range u.Images {
			images[i] = string(id)
		}
		args["images"] = images
	}
	if u.AvailabilityPlan != nil {
		b, err := json.Marshal(u.AvailabilityPlan)
		if err != nil {
			return nil, fmt.Errorf("encode availability plan: %w", err)
		}
		args["availability_plan"] = b
	}
	if u.Price != nil {
		args["price_amount"] = &u.Price.Amount
		args["price_currency"] = &u.Price.Currency
	}
	return args, nil
}

// scanListing maps a single database row into a domain.Listing.
func scanListing(s scanner) (domain.Listing, error) {
	var (
		l             domain.Listing
		id            pgtype.UUID
		state, lt     string
		publicData    []byte
		images        []string
		plan          []byte
		priceAmount   *int64
		priceCurrency *string
	)

	err := s.Scan(&id, &l.Title, &l.Description, &state, &lt, &publicData, &images,
		&plan, &priceAmount, &priceCurrency, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.Listing{}, mapError(err)
	}

	l.ID = uuid.UUID(id.Bytes)
	l.State = domain.ListingState(state)
	l.ListingType = domain.ListingType(lt)

	l.PublicData = map[string]any{}
	if len(publicData) > 0 {
		if err := json.Unmarshal(publicData, &l.PublicData); err != nil {
			return domain.Listing{}, fmt.Errorf("decode public data: %w", err)
		}
	}

	l.Images = make([]domain.ImageID, len(images))
	for i, img := range images {
		l.Images[i] = domain.ImageID(img)
	}

	if plan != nil {
		var p domain.AvailabilityPlan
		if err := json.Unmarshal(plan, &p); err != nil {
			return domain.Listing{}, fmt.Errorf("decode availability plan: %w", err)
		}
		l.AvailabilityPlan = &p
	}

	if priceAmount != nil {
		l.Price = &domain.Money{Amount: *priceAmount}
		if priceCurrency != nil {
			l.Price.Currency = *priceCurrency
		}
	}

	return l, nil
}
