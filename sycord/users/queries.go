package users

const (
	queryFindOrCreateByProvider = `
		INSERT INTO users (provider, provider_id, username, email, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider, provider_id)
		DO UPDATE SET
			username = EXCLUDED.username,
			email = EXCLUDED.email,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
		RETURNING id, provider, provider_id, username, email, avatar_url, created_at, updated_at
	`

	queryFindByID = `
		SELECT id, provider, provider_id, username, email, avatar_url, created_at, updated_at
		FROM users
		WHERE id = $1
	`
)
