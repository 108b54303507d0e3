package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
)

type serviceAccountKey struct {
	Type        string `json:"type"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// LoadCredentials parses a service account key into Drive-scoped credentials.
//
// Every failure is a configuration error; the key material never appears in the
// returned message.
func LoadCredentials(ctx context.Context, raw []byte) (*google.Credentials, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, pkgerror.NewConfiguration(errors.New("service account credentials are empty"))
	}

	var key serviceAccountKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, pkgerror.NewConfiguration(errors.New("service account credentials are not valid JSON"))
	}

	if key.Type != "service_account" {
		return nil, pkgerror.NewConfiguration(fmt.Errorf("credential type %q is not service_account", key.Type))
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, pkgerror.NewConfiguration(errors.New("service account credentials lack client_email or private_key"))
	}

	creds, err := google.CredentialsFromJSON(ctx, raw, drive.DriveScope)
	if err != nil {
		return nil, pkgerror.NewConfiguration(fmt.Errorf("parse service account credentials: %w", err))
	}

	return creds, nil
}
