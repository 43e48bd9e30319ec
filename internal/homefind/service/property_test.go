package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lagoshomes/homefind/internal/homefind/domain"
)

func propertyFixture() PropertyParams {
	return PropertyParams{
		Title:       "3-bed apartment in Yaba",
		Description: "Bright, close to the station.",
		Type:        domain.PropertyApartment,
		Listing:     domain.ListingRent,
		Address:     "4 Herbert Macaulay Way",
		City:        "Lagos",
		State:       "Lagos",
		Price:       1800000,
		Bedrooms:    3,
		Bathrooms:   2,
	}
}

func newPropertyFixtures(t *testing.T) (context.Context, *PropertyService, Identity, Identity, Identity) {
	t.Helper()
	ctx := context.Background()
	st := newTestStore(t)
	mail := &capturingMailer{}
	accounts := newAccountService(t, st, mail)

	vendor := registerActiveUser(t, accounts, mail, "v@example.com", "vendor1", "long-enough-pw", domain.RoleVendor)
	other := registerActiveUser(t, accounts, mail, "v2@example.com", "vendor2", "long-enough-pw", domain.RoleVendor)
	customer := registerActiveUser(t, accounts, mail, "c@example.com", "customer1", "long-enough-pw", domain.RoleCustomer)

	svc := &PropertyService{Store: st}
	return ctx, svc,
		Identity{UserID: vendor.ID, Role: vendor.Role},
		Identity{UserID: other.ID, Role: other.Role},
		Identity{UserID: customer.ID, Role: customer.Role}
}

func TestCreateProperty(t *testing.T) {
	ctx, svc, vendor, _, customer := newPropertyFixtures(t)

	p, err := svc.CreateProperty(ctx, vendor, propertyFixture())
	require.NoError(t, err)
	require.Equal(t, vendor.UserID, p.VendorID)
	require.Equal(t, domain.StatusAvailable, p.Status)
	require.Equal(t, "NGN", p.Currency)

	// Customers cannot hold listings.
	_, err = svc.CreateProperty(ctx, customer, propertyFixture())
	require.ErrorIs(t, err, ErrNotPropertyOwner)
}

func TestCreatePropertyValidation(t *testing.T) {
	ctx, svc, vendor, _, _ := newPropertyFixtures(t)

	bad := propertyFixture()
	bad.Title = "  "
	_, err := svc.CreateProperty(ctx, vendor, bad)
	require.ErrorIs(t, err, ErrInvalidProperty)

	bad = propertyFixture()
	bad.Type = "castle"
	_, err = svc.CreateProperty(ctx, vendor, bad)
	require.ErrorIs(t, err, ErrInvalidProperty)

	bad = propertyFixture()
	bad.Price = -1
	_, err = svc.CreateProperty(ctx, vendor, bad)
	require.ErrorIs(t, err, ErrInvalidProperty)
}

func TestUpdatePropertyOwnership(t *testing.T) {
	ctx, svc, vendor, other, _ := newPropertyFixtures(t)

	p, err := svc.CreateProperty(ctx, vendor, propertyFixture())
	require.NoError(t, err)

	update := propertyFixture()
	update.Title = "3-bed apartment in Yaba (renovated)"
	update.Status = domain.StatusPending

	// Another vendor cannot touch it.
	_, err = svc.UpdateProperty(ctx, other, p.ID, update)
	require.ErrorIs(t, err, ErrNotPropertyOwner)

	// The owner can.
	updated, err := svc.UpdateProperty(ctx, vendor, p.ID, update)
	require.NoError(t, err)
	require.Equal(t, "3-bed apartment in Yaba (renovated)", updated.Title)
	require.Equal(t, domain.StatusPending, updated.Status)

	// A superadmin can as well.
	admin := Identity{UserID: other.UserID, Role: domain.RoleSuperAdmin}
	update.Status = domain.StatusAvailable
	_, err = svc.UpdateProperty(ctx, admin, p.ID, update)
	require.NoError(t, err)
}

func TestDeleteProperty(t *testing.T) {
	ctx, svc, vendor, other, _ := newPropertyFixtures(t)

	p, err := svc.CreateProperty(ctx, vendor, propertyFixture())
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteProperty(ctx, other, p.ID), ErrNotPropertyOwner)
	require.NoError(t, svc.DeleteProperty(ctx, vendor, p.ID))

	_, err = svc.GetProperty(ctx, p.ID)
	require.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestGetPropertyCountsViews(t *testing.T) {
	ctx, svc, vendor, _, _ := newPropertyFixtures(t)

	p, err := svc.CreateProperty(ctx, vendor, propertyFixture())
	require.NoError(t, err)

	first, err := svc.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, first.Property.ViewsCount)

	second, err := svc.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, second.Property.ViewsCount)
}

func TestListProperties(t *testing.T) {
	ctx, svc, vendor, other, _ := newPropertyFixtures(t)

	_, err := svc.CreateProperty(ctx, vendor, propertyFixture())
	require.NoError(t, err)
	mine := propertyFixture()
	mine.Title = "Land in Epe"
	mine.Type = domain.PropertyLand
	mine.Listing = domain.ListingSale
	_, err = svc.CreateProperty(ctx, other, mine)
	require.NoError(t, err)

	all, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	ours, err := svc.ListVendorProperties(ctx, vendor.UserID)
	require.NoError(t, err)
	require.Len(t, ours, 1)
	require.Equal(t, vendor.UserID, ours[0].VendorID)
}

func TestPropertyImagesAndFeatures(t *testing.T) {
	ctx, svc, vendor, other, _ := newPropertyFixtures(t)

	p, err := svc.CreateProperty(ctx, vendor, propertyFixture())
	require.NoError(t, err)

	img, err := svc.AddImage(ctx, vendor, p.ID, "https://cdn.example/front.jpg", "front view")
	require.NoError(t, err)
	f, err := svc.AddFeature(ctx, vendor, p.ID, "borehole water")
	require.NoError(t, err)

	// Empty payloads and non-owners are rejected.
	_, err = svc.AddImage(ctx, vendor, p.ID, "  ", "")
	require.ErrorIs(t, err, ErrInvalidProperty)
	_, err = svc.AddFeature(ctx, other, p.ID, "pool")
	require.ErrorIs(t, err, ErrNotPropertyOwner)

	detail, err := svc.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Images, 1)
	require.Equal(t, "https://cdn.example/front.jpg", detail.Images[0].URL)
	require.Len(t, detail.Features, 1)
	require.Equal(t, "borehole water", detail.Features[0].Feature)

	require.NoError(t, svc.RemoveImage(ctx, vendor, p.ID, img.ID))
	require.NoError(t, svc.RemoveFeature(ctx, vendor, p.ID, f.ID))

	detail, err = svc.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, detail.Images)
	require.Empty(t, detail.Features)
}

func TestRemoveAttachmentsScopedToListing(t *testing.T) {
	ctx, svc, vendor, other, _ := newPropertyFixtures(t)

	// Each vendor owns a listing; the attachments belong to vendor one.
	p, err := svc.CreateProperty(ctx, vendor, propertyFixture())
	require.NoError(t, err)
	theirs := propertyFixture()
	theirs.Title = "Duplex in Surulere"
	p2, err := svc.CreateProperty(ctx, other, theirs)
	require.NoError(t, err)

	img, err := svc.AddImage(ctx, vendor, p.ID, "https://cdn.example/front.jpg", "front view")
	require.NoError(t, err)
	f, err := svc.AddFeature(ctx, vendor, p.ID, "borehole water")
	require.NoError(t, err)

	// Vendor two owns p2, but cannot route a delete of vendor one's
	// attachments through it.
	require.ErrorIs(t, svc.RemoveImage(ctx, other, p2.ID, img.ID), ErrPropertyNotFound)
	require.ErrorIs(t, svc.RemoveFeature(ctx, other, p2.ID, f.ID), ErrPropertyNotFound)

	detail, err := svc.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Images, 1)
	require.Len(t, detail.Features, 1)

	// The owner still can, through the listing they belong to.
	require.NoError(t, svc.RemoveImage(ctx, vendor, p.ID, img.ID))
	require.NoError(t, svc.RemoveFeature(ctx, vendor, p.ID, f.ID))
}
