// Package logger builds the *slog.Logger used by the engine hosts.
//
// New creates a logger configured by Option functions:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level; ParseLevel reads one from configuration.
//   - WithOutput redirects records, WithAttr attaches static attributes.
//   - WithContextValue copies a context value into every record logged
//     with a *Context method; WithContextExtractors registers arbitrary
//     ContextExtractor callbacks such as requestid.LoggerExtractor.
//
// The handler is wrapped in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating to the text or JSON handler.
//
// Attribute helpers in attr.go keep key names consistent across packages:
//
//	log.Info("field evaluated",
//	    logger.Field("amount"),
//	    logger.Classification(validator.Decimal),
//	    logger.Verdict(ok),
//	    logger.Error(err),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
