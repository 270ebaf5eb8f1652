package metrics

import "github.com/mustaklebrown/loko-logistique-comores-sub001/pkg/logger"

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
