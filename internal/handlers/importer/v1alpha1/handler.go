// Package v1alpha1 handles the grpc feature service interface
package v1alpha1

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-importer/internal/entities"
	"github.com/KirkDiggler/rpg-importer/internal/entities/ddb"
	"github.com/KirkDiggler/rpg-importer/internal/entities/foundry"
	"github.com/KirkDiggler/rpg-importer/internal/errors"
	importersvc "github.com/KirkDiggler/rpg-importer/internal/services/importer"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	ImportService importersvc.Service
	Logger        *zap.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.ImportService == nil {
		return errors.InvalidArgument("import service is required")
	}
	return nil
}

// Handler implements the feature gRPC service
type Handler struct {
	importService importersvc.Service
	logger        *zap.Logger
}

var _ FeatureServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		importService: cfg.ImportService,
		logger:        logger,
	}, nil
}

// importResponse is the JSON shape of an import on the wire
type importResponse struct {
	ImportID      string             `json:"import_id"`
	CharacterID   int64              `json:"character_id"`
	CharacterName string             `json:"character_name"`
	Stored        bool               `json:"stored"`
	CreatedAt     time.Time          `json:"created_at"`
	ExpiresAt     *time.Time         `json:"expires_at,omitempty"`
	Features      []*foundry.Feature `json:"features"`
}

type getImportRequest struct {
	ImportID string `json:"import_id"`
}

type listImportsRequest struct {
	CharacterID int64 `json:"character_id"`
	Limit       int   `json:"limit"`
}

type listImportsResponse struct {
	Imports []importResponse `json:"imports"`
}

// ParseFeatures imports the character document carried in the request
func (h *Handler) ParseFeatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	data, err := protojson.Marshal(req)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request"))
	}

	doc, err := ddb.Decode(data)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid character document"))
	}

	out, err := h.importService.ImportFeatures(ctx, &importersvc.ImportFeaturesInput{Document: doc})
	if err != nil {
		h.logger.Debug("import failed", zap.Int64("character_id", doc.Character.ID), zap.Error(err))
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(toImportResponse(out.Import, out.Stored))
}

// GetImport returns a stored import
func (h *Handler) GetImport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in getImportRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ImportID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("import_id is required"))
	}

	out, err := h.importService.GetImport(ctx, &importersvc.GetImportInput{ImportID: in.ImportID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(toImportResponse(out.Import, true))
}

// ListImports returns the stored imports of a character
func (h *Handler) ListImports(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listImportsRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.importService.ListImports(ctx, &importersvc.ListImportsInput{
		CharacterID: in.CharacterID,
		Limit:       in.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := listImportsResponse{Imports: make([]importResponse, 0, len(out.Imports))}
	for _, record := range out.Imports {
		resp.Imports = append(resp.Imports, toImportResponse(record, true))
	}
	return toStruct(resp)
}

func toImportResponse(record *entities.Import, stored bool) importResponse {
	resp := importResponse{
		ImportID:      record.ID,
		CharacterID:   record.CharacterID,
		CharacterName: record.CharacterName,
		Stored:        stored,
		CreatedAt:     record.CreatedAt,
		Features:      record.Features,
	}
	if resp.Features == nil {
		resp.Features = []*foundry.Feature{}
	}
	if !record.ExpiresAt.IsZero() {
		expires := record.ExpiresAt
		resp.ExpiresAt = &expires
	}
	return resp
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}

func fromStruct(req *structpb.Struct, v interface{}) error {
	data, err := protojson.Marshal(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
	}
	return nil
}
