package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sycord/server/internal/llm"
	"github.com/sycord/server/internal/logger"
	"github.com/sycord/server/internal/marker"
	"github.com/sycord/server/sycord/functions"
)

const (
	// the detail probe is a short classification-style call
	probeMaxOutputTokens = 256
	probeTemperature     = 0.2
)

// shown instead of a hard error when no completion credential is
// configured; the [6] wrapper makes the dashboard render it as a normal
// assistant message
const notConfiguredMessage = "AI plugin generation is not configured on this server. " +
	"Ask the server administrator to set a completion API key."

// creates a generator; textGen may be nil when AI features are disabled
func New(textGen llm.TextGenerator, store FunctionStore) *Generator {
	return &Generator{
		generator: textGen,
		store:     store,
		locks:     newSessionLocks(),
	}
}

// Generate runs one classify-and-generate turn. New mode performs at most
// two completion calls (detail probe, then optional escalation to full
// generation); every other mode performs exactly one.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMissingMessage
	}

	mode := Classify(req)
	if mode == ModeInvalid {
		return nil, ErrFunctionIDRequired
	}

	if g.generator == nil {
		return &GenerateResponse{
			Response: marker.WrapUsage(notConfiguredMessage),
		}, nil
	}

	logger.Debug("generation request classified",
		"mode", mode.String(),
		"user_id", req.UserID,
	)

	switch mode {
	case ModeDetailsProvided:
		return g.generateWithDetails(ctx, req)
	case ModeFollowUp:
		return g.generateFollowUp(ctx, req)
	default:
		return g.generateNew(ctx, req)
	}
}

// New mode: probe for missing details first. When the probe response
// carries [3] tokens they are returned as the requested details without a
// second call; otherwise the request escalates directly to full generation
// within the same turn.
func (g *Generator) generateNew(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	name := DeriveName(req.Message)

	probe, err := g.generator.Complete(ctx, llm.CompletionRequest{
		Prompt:          buildDetailProbePrompt(req.Message),
		Temperature:     probeTemperature,
		MaxOutputTokens: probeMaxOutputTokens,
	})

	if err != nil {
		return nil, fmt.Errorf("detail probe failed: %w", err)
	}

	if marker.HasDetailTokens(probe) {
		return &GenerateResponse{
			Response:         marker.PrefixName(name, probe),
			PluginName:       name,
			RequestedDetails: marker.SplitDetailTokens(probe),
			Model:            g.generator.Model(),
		}, nil
	}

	return g.generateCode(ctx, name, req.Message, nil)
}

// DetailsProvided mode: one generation call with the accumulated details,
// no further detail-asking loop
func (g *Generator) generateWithDetails(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	name := DeriveName(req.Message)

	return g.generateCode(ctx, name, req.Message, req.Details)
}

func (g *Generator) generateCode(ctx context.Context, name, message string, details map[string]string) (*GenerateResponse, error) {
	raw, err := g.generator.Complete(ctx, llm.CompletionRequest{
		Prompt: buildGenerationPrompt(message, details),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	decoded := marker.Decode(raw)

	return &GenerateResponse{
		Response:          marker.PrefixName(name, raw),
		PluginName:        name,
		UsageInstructions: decoded.Usage,
		Code:              decoded.Code,
		Files:             decoded.Files,
		Model:             g.generator.Model(),
	}, nil
}

// FollowUp mode: load the function's latest code, generate the edit, then
// persist a new code version plus the user/ai message pair in one write
func (g *Generator) generateFollowUp(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	lock := g.locks.get(req.ChatSessionID)
	lock.Lock()
	defer lock.Unlock()

	fn, err := g.store.Get(ctx, req.FunctionID, req.UserID)
	if err != nil {
		if errors.Is(err, functions.ErrFunctionNotFound) {
			return nil, ErrFunctionNotFound
		}

		return nil, fmt.Errorf("failed to load function: %w", err)
	}

	raw, err := g.generator.Complete(ctx, llm.CompletionRequest{
		Prompt: buildFollowUpPrompt(fn.LatestCode, req.Message),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	decoded := marker.Decode(raw)
	now := time.Now().UTC()

	version := functions.CodeVersion{
		ID:                uuid.NewString(),
		FunctionID:        req.FunctionID,
		ChatSessionID:     req.ChatSessionID,
		Version:           fn.LatestVersion + 1,
		Code:              decoded.Code,
		UsageInstructions: decoded.Usage,
		Prompt:            req.Message,
		CreatedAt:         now,
	}

	messages := []functions.ChatMessage{
		{
			ID:            uuid.NewString(),
			ChatSessionID: req.ChatSessionID,
			FunctionID:    req.FunctionID,
			Role:          functions.RoleUser,
			Content:       req.Message,
			CreatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			ChatSessionID: req.ChatSessionID,
			FunctionID:    req.FunctionID,
			Role:          functions.RoleAI,
			Content:       raw,
			IsCode:        decoded.HasCode,
			CreatedAt:     now,
		},
	}

	persistedVersion, err := g.store.AppendCodeVersion(ctx, version, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to persist code version: %w", err)
	}

	return &GenerateResponse{
		Response:          raw,
		UsageInstructions: decoded.Usage,
		Code:              decoded.Code,
		Files:             decoded.Files,
		Version:           persistedVersion,
		Model:             g.generator.Model(),
	}, nil
}
