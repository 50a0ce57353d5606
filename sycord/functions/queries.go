package functions

const (
	queryCreateFunction = `
		INSERT INTO plugin_functions (id, user_id, name, chat_session_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, chat_session_id, created_at, updated_at
	`

	queryGetWithLatest = `
		SELECT f.id, f.user_id, f.name, f.chat_session_id, f.created_at, f.updated_at,
		       COALESCE(v.version, 0), COALESCE(v.code, ''), COALESCE(v.usage_instructions, '')
		FROM plugin_functions f
		LEFT JOIN LATERAL (
			SELECT version, code, usage_instructions
			FROM code_versions
			WHERE function_id = f.id
			ORDER BY version DESC
			LIMIT 1
		) v ON true
		WHERE f.id = $1 AND f.user_id = $2
	`

	queryList = `
		SELECT f.id, f.user_id, f.name, f.chat_session_id, f.created_at, f.updated_at,
		       COALESCE(v.version, 0), COALESCE(v.usage_instructions, '')
		FROM plugin_functions f
		LEFT JOIN LATERAL (
			SELECT version, usage_instructions
			FROM code_versions
			WHERE function_id = f.id
			ORDER BY version DESC
			LIMIT 1
		) v ON true
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	queryDelete = `
		DELETE FROM plugin_functions
		WHERE id = $1 AND user_id = $2
	`

	queryTouchFunction = `
		UPDATE plugin_functions
		SET updated_at = NOW()
		WHERE id = $1
	`

	// version is derived inside the insert so a writer on another process
	// cannot double-allocate even without the in-process session lock
	queryInsertVersion = `
		INSERT INTO code_versions (id, function_id, chat_session_id, version, code, usage_instructions, prompt, created_at)
		SELECT $1, $2, $3, COALESCE(MAX(version), 0) + 1, $4, $5, $6, $7
		FROM code_versions
		WHERE chat_session_id = $3
		RETURNING version
	`

	queryListVersions = `
		SELECT cv.id, cv.function_id, cv.chat_session_id, cv.version, cv.code, cv.usage_instructions, cv.prompt, cv.created_at
		FROM code_versions cv
		INNER JOIN plugin_functions f ON cv.function_id = f.id
		WHERE cv.function_id = $1 AND f.user_id = $2
		ORDER BY cv.version ASC
	`

	queryInsertMessage = `
		INSERT INTO chat_messages (id, chat_session_id, function_id, role, content, is_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	queryListMessages = `
		SELECT cm.id, cm.chat_session_id, cm.function_id, cm.role, cm.content, cm.is_code, cm.created_at
		FROM chat_messages cm
		INNER JOIN plugin_functions f ON cm.function_id = f.id
		WHERE cm.function_id = $1 AND f.user_id = $2
		ORDER BY cm.created_at ASC, cm.role DESC
	`
)
