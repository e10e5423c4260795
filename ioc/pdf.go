package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/irantalent/estekhdam/internal/pkg/pdf"
)

func InitPDFConverter() pdf.Converter {
	type Config struct {
		RemoteURL string `yaml:"remoteURL"`
	}
	var cfg Config
	err := econf.UnmarshalKey("chrome", &cfg)
	if err != nil {
		panic(err)
	}
	return pdf.NewChromeDPConverter(cfg.RemoteURL)
}
