// Package errors provides structured errors for the importer.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("import %s not found", id).WithMeta("import_id", id)
//
// Wrapping keeps the code of the wrapped error unless a new one is given:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load import")
//	}
//
// Validation failures are collected with a ValidationBuilder and surface as
// InvalidArgument errors with the field messages in the "validation_errors" meta:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("path", input.Path, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// The gRPC edge converts with ToGRPCError and FromGRPCError. Metadata travels as
// a google.protobuf.Struct status detail.
package errors
