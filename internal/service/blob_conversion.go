package service

import (
	"github.com/MKhiriev/go-secure-id/internal/crypto"
	"github.com/MKhiriev/go-secure-id/models"
)

func toSecureData(b crypto.EncryptedBlob) models.SecureData {
	return models.SecureData{
		Hash:   b.Hash,
		Data:   b.Data,
		Secret: b.Secret,
	}
}

func toEncryptedBlob(d models.SecureData) crypto.EncryptedBlob {
	return crypto.EncryptedBlob{
		Data:   d.Data,
		Hash:   d.Hash,
		Secret: d.Secret,
	}
}
