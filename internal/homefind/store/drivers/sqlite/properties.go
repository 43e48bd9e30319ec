package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
	"github.com/lagoshomes/homefind/internal/homefind/store"
	"github.com/lagoshomes/homefind/pkg/idx"
)

type propertiesRepo struct {
	db dbtx
}

const propertyColumns = `id, vendor_id, title, description, property_type,
	listing_type, status, address, city, state, price, currency, bedrooms,
	bathrooms, square_footage, year_built, featured, verified, views_count,
	created_at, updated_at`

func scanProperty(row rowScanner) (domain.Property, error) {
	var (
		p        domain.Property
		id       string
		vendorID string
		ptype    string
		ltype    string
		status   string
	)
	err := row.Scan(
		&id, &vendorID, &p.Title, &p.Description, &ptype, &ltype, &status,
		&p.Address, &p.City, &p.State, &p.Price, &p.Currency, &p.Bedrooms,
		&p.Bathrooms, &p.SquareFootage, &p.YearBuilt, &p.Featured,
		&p.Verified, &p.ViewsCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Property{}, err
	}

	p.ID, err = uuid.Parse(id)
	if err != nil {
		return domain.Property{}, err
	}
	p.VendorID, err = uuid.Parse(vendorID)
	if err != nil {
		return domain.Property{}, err
	}
	p.Type = domain.PropertyType(ptype)
	p.Listing = domain.ListingType(ltype)
	p.Status = domain.PropertyStatus(status)
	return p, nil
}

func (r *propertiesRepo) GetPropertyByID(ctx context.Context, id uuid.UUID) (domain.Property, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id.String())
	p, err := scanProperty(row)
	if err != nil {
		return domain.Property{}, mapNotFound(err)
	}
	return p, nil
}

func (r *propertiesRepo) ListProperties(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func (r *propertiesRepo) ListVendorProperties(ctx context.Context, vendorID uuid.UUID) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+propertyColumns+` FROM properties
		 WHERE vendor_id = ? ORDER BY created_at DESC`, vendorID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProperties(rows)
}

func collectProperties(rows *sql.Rows) ([]domain.Property, error) {
	out := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *propertiesRepo) CreateProperty(ctx context.Context, p domain.Property) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO properties (
			id, vendor_id, title, description, property_type, listing_type,
			status, address, city, state, price, currency, bedrooms,
			bathrooms, square_footage, year_built, featured, verified,
			views_count, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.VendorID.String(), p.Title, p.Description,
		string(p.Type), string(p.Listing), string(p.Status),
		p.Address, p.City, p.State, p.Price, p.Currency, p.Bedrooms,
		p.Bathrooms, p.SquareFootage, p.YearBuilt, p.Featured, p.Verified,
		p.ViewsCount, now, now,
	)
	return mapConstraint(err)
}

func (r *propertiesRepo) UpdateProperty(ctx context.Context, p domain.Property) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE properties
		SET title = ?, description = ?, property_type = ?, listing_type = ?,
		    status = ?, address = ?, city = ?, state = ?, price = ?,
		    currency = ?, bedrooms = ?, bathrooms = ?, square_footage = ?,
		    year_built = ?, featured = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Description, string(p.Type), string(p.Listing),
		string(p.Status), p.Address, p.City, p.State, p.Price, p.Currency,
		p.Bedrooms, p.Bathrooms, p.SquareFootage, p.YearBuilt, p.Featured,
		time.Now().UTC(), p.ID.String(),
	)
	return err
}

func (r *propertiesRepo) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM properties WHERE id = ?`, id.String())
	return err
}

func (r *propertiesRepo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE properties SET views_count = views_count + 1 WHERE id = ?`,
		id.String())
	return err
}

func (r *propertiesRepo) ListImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, property_id, url, alt_text, created_at
		FROM property_images WHERE property_id = ? ORDER BY created_at ASC`,
		propertyID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PropertyImage{}
	for rows.Next() {
		var (
			img  domain.PropertyImage
			id   string
			prop string
		)
		if err := rows.Scan(&id, &prop, &img.URL, &img.AltText, &img.CreatedAt); err != nil {
			return nil, err
		}
		img.ID = idx.ID(id)
		img.PropertyID, err = uuid.Parse(prop)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *propertiesRepo) AddImage(ctx context.Context, img domain.PropertyImage) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO property_images (id, property_id, url, alt_text, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		img.ID.String(), img.PropertyID.String(), img.URL, img.AltText,
		time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *propertiesRepo) RemoveImage(ctx context.Context, propertyID uuid.UUID, id idx.ID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM property_images WHERE id = ? AND property_id = ?`,
		id.String(), propertyID.String())
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *propertiesRepo) ListFeatures(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyFeature, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, property_id, feature
		FROM property_features WHERE property_id = ? ORDER BY id ASC`,
		propertyID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PropertyFeature{}
	for rows.Next() {
		var (
			f    domain.PropertyFeature
			id   string
			prop string
		)
		if err := rows.Scan(&id, &prop, &f.Feature); err != nil {
			return nil, err
		}
		f.ID = idx.ID(id)
		f.PropertyID, err = uuid.Parse(prop)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *propertiesRepo) AddFeature(ctx context.Context, f domain.PropertyFeature) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO property_features (id, property_id, feature)
		VALUES (?, ?, ?)`,
		f.ID.String(), f.PropertyID.String(), f.Feature,
	)
	return mapConstraint(err)
}

func (r *propertiesRepo) RemoveFeature(ctx context.Context, propertyID uuid.UUID, id idx.ID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM property_features WHERE id = ? AND property_id = ?`,
		id.String(), propertyID.String())
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

// requireRowsAffected maps a zero-row write to ErrNotFound.
func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
