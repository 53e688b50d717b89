package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitFirestore_RejectsMissingSettings(t *testing.T) {
	ctx := context.Background()

	_, err := InitFirestore(ctx, "", "project")
	assert.ErrorContains(t, err, "credentials are missing")

	_, err = InitFirestore(ctx, "e30=", "")
	assert.ErrorContains(t, err, "project id is missing")

	_, err = InitFirestore(ctx, "%%%not-base64", "project")
	assert.ErrorContains(t, err, "decode firebase credentials")
}
