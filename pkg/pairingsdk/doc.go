/*
Package pairingsdk is a client for the pairing service, the one-time code
exchange behind QR sign-in.

A web client issues a code, renders it as a QR image and waits:

	client := pairingsdk.NewSDKClient("https://pairing.example.com")

	code, err := client.IssueCode(ctx)
	// render code.Code as a QR image
	status, err := client.WaitForClaim(ctx, code.Code, code.ExpiresAt)
	// status.SessionRef identifies the session the scanning device created

The scanning device redeems the code with its own bearer token:

	resp, err := client.Redeem(ctx, accessToken, pairingsdk.RedeemRequest{Code: scanned})
	if errors.Is(err, pairingsdk.ErrCodeAlreadyClaimed) {
		// somebody else was faster
	}

A backend holding the pairing:introspect scope resolves a session reference:

	info, err := client.IntrospectSession(ctx, serviceToken, status.SessionRef)

Errors returned by the server are *APIError values and match the
predefined errors with errors.Is.
*/
package pairingsdk
