// Package homefindsdk is a Go client for the HomeFind listing service API.
//
// The SDKClient covers the unauthenticated surface: registration,
// account activation, login, password reset and the public property
// catalogue. A successful Login returns a Session, which carries the
// bearer token for the authenticated surface: profile management,
// password change, and the vendor property endpoints.
//
// Basic usage:
//
//	client := homefindsdk.NewSDKClient("https://api.homefind.example")
//
//	_, err := client.Register(ctx, homefindsdk.RegisterRequest{
//		Email:    "vendor@example.com",
//		Username: "vendor",
//		Password: "s3cret-enough",
//		Role:     "vendor",
//	})
//	if err != nil {
//		// *APIError carries the server's error code, e.g. "email_taken"
//	}
//
//	// After following the emailed activation link:
//	session, err := client.Login(ctx, "vendor@example.com", "s3cret-enough")
//	if err != nil {
//		return err
//	}
//	defer session.Logout(ctx)
//
//	created, err := session.CreateProperty(ctx, homefindsdk.PropertyRequest{
//		Title:       "3 bedroom flat in Lekki",
//		Type:        "apartment",
//		Listing:     "rent",
//		Price:       2_500_000,
//	})
//
// All errors returned by the server are surfaced as *APIError, so callers
// can branch on the machine-readable code:
//
//	var apiErr *homefindsdk.APIError
//	if errors.As(err, &apiErr) && apiErr.Code == homefindsdk.ErrorCodeEmailTaken {
//		// prompt for a different address
//	}
package homefindsdk
