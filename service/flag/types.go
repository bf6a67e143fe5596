package flag

import (
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

type service struct{}

type FlagService interface {
	GetParsedFlags() (model.Flags, error)
}
