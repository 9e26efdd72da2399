// extdump разбирает XML фрагменты расширений станз и печатает
// распознанные элементы. Утилита для ручной проверки провайдеров:
//
//	extdump -file presence.xml
//	cat fragment.xml | extdump
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arzzra/xmpp_ext/pkg/colibri"
	"github.com/arzzra/xmpp_ext/pkg/jingle"
	"github.com/arzzra/xmpp_ext/pkg/presence"
	"github.com/arzzra/xmpp_ext/pkg/xmppext"
)

func main() {
	var (
		file  = flag.String("file", "-", "Файл с XML фрагментами (\"-\" - stdin)")
		debug = flag.Bool("debug", false, "Подробное логирование")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	input := os.Stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "не удалось открыть файл: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}

	reg := newRegistry()
	if err := dump(reg, input, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "разбор прерван: %v\n", err)
		os.Exit(1)
	}
}

// newRegistry собирает реестр со всеми известными провайдерами.
func newRegistry() *xmppext.Registry {
	reg := xmppext.NewRegistry()
	reg.SetMetrics(xmppext.NewMetrics(prometheus.NewRegistry()))
	presence.RegisterProviders(reg)
	jingle.RegisterProviders(reg)
	colibri.RegisterProviders(reg)
	return reg
}

// dump читает поток токенов и печатает каждое распознанное расширение.
func dump(reg *xmppext.Registry, r io.Reader, w io.Writer) error {
	parser := xmppext.NewParser(r)
	for {
		elem, err := reg.ParseElement(parser)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if elem == nil {
			continue
		}
		fmt.Fprintf(w, "%s {%s} %T\n    %s\n",
			elem.ElementName(), elem.Namespace(), elem, elem.ToXML(""))
	}
}
