// Package logger builds *slog.Logger instances configured with functional
// options and able to pull attributes out of context.Context.
//
// New picks a JSON or text handler, applies a level and static attributes,
// and wraps the handler so that registered ContextExtractor functions run on
// every record. That is how request ids and the runtime environment end up on
// log lines without being passed around explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "postcodes"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "postcode parsed",
//	    logger.Postcode(pc.Normalized()),
//	    logger.Valid(pc.IsValid()),
//	)
//
// Attribute helpers in attr.go keep key names consistent across the command
// line tool and the HTTP API. Error and Errors return an empty attribute for
// nil errors, so they can be passed unconditionally.
package logger
