package asaclient

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/pkg/apiErrors"
)

// Credentials é o material de identidade usado para assinar a assertion.
// Imutável depois de resolvido; nenhuma chamada de rede acontece sem ele completo.
type Credentials struct {
	ClientID   string
	TeamID     string
	KeyID      string
	PrivateKey []byte
}

// CredentialParams são os valores explícitos passados na construção do cliente.
// Campos vazios são preenchidos a partir da configuração (variáveis de ambiente)
type CredentialParams struct {
	ClientID          string
	TeamID            string
	KeyID             string
	PrivateKeyPath    string
	PrivateKeyContent string
}

// ResolveCredentials resolve o material de identidade: parâmetros explícitos
// têm precedência, o restante vem da configuração. Falha antes de qualquer
// chamada de rede quando algum campo obrigatório está ausente
func ResolveCredentials(params CredentialParams, cfg *config.AppleAds) (*Credentials, error) {
	clientID := fallback(params.ClientID, cfg.ClientID)
	teamID := fallback(params.TeamID, cfg.TeamID)
	keyID := fallback(params.KeyID, cfg.KeyID)

	missing := make([]string, 0, 3)
	if clientID == "" {
		missing = append(missing, "client_id")
	}
	if teamID == "" {
		missing = append(missing, "team_id")
	}
	if keyID == "" {
		missing = append(missing, "key_id")
	}

	if len(missing) > 0 {
		return nil, apiErrors.NewConfigError(
			apiErrors.ErrMissingCredentials,
			"credenciais obrigatórias ausentes: "+strings.Join(missing, ", "),
		)
	}

	privateKey, err := resolvePrivateKey(params, cfg)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		ClientID:   clientID,
		TeamID:     teamID,
		KeyID:      keyID,
		PrivateKey: privateKey,
	}, nil
}

// resolvePrivateKey obtém a chave privada: conteúdo inline tem precedência
// sobre o caminho de arquivo. Única leitura de disco de todo o cliente
func resolvePrivateKey(params CredentialParams, cfg *config.AppleAds) ([]byte, error) {
	if content := fallback(params.PrivateKeyContent, cfg.PrivateKeyContent); content != "" {
		return []byte(content), nil
	}

	keyPath := fallback(params.PrivateKeyPath, cfg.PrivateKeyPath)
	if keyPath == "" {
		return nil, apiErrors.NewConfigError(
			apiErrors.ErrMissingPrivateKey,
			"nenhum material de chave privada disponível (nem conteúdo inline, nem caminho de arquivo)",
		)
	}

	content, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a chave privada de %s", keyPath)
	}

	return content, nil
}

func fallback(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
