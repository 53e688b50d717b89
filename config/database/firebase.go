package database

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// InitFirestore builds a Firestore client from base64 encoded service account
// credentials. The caller owns the client and must Close it.
func InitFirestore(ctx context.Context, encodedCredentials, projectID string) (*firestore.Client, error) {
	if encodedCredentials == "" {
		return nil, fmt.Errorf("firebase credentials are missing")
	}
	if projectID == "" {
		return nil, fmt.Errorf("firebase project id is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(encodedCredentials)
	if err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}
