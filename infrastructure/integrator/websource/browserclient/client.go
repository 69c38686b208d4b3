package browserclient

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/internal/config"
)

type Client interface {
	FetchRenderedHTML(ctx context.Context, pageURL string, readinessSelectors []string) (string, error)
}

type BrowserClient struct {
	Cfg *config.Scraper
}

func NewClient(cfg *config.Scraper) Client {
	return &BrowserClient{Cfg: cfg}
}

// Tipos de recurso que não contribuem para o conteúdo textual da página e
// podem ser bloqueados para acelerar a renderização
var blockedResourceTypes = map[network.ResourceType]bool{
	network.ResourceTypeImage:      true,
	network.ResourceTypeFont:       true,
	network.ResourceTypeStylesheet: true,
	network.ResourceTypeMedia:      true,
}

// FetchRenderedHTML abre a página em uma sessão de navegador dedicada,
// aguarda os seletores de prontidão na ordem informada e captura o HTML
// renderizado. A sessão é sempre encerrada ao final, com sucesso ou não.
func (c *BrowserClient) FetchRenderedHTML(ctx context.Context, pageURL string, readinessSelectors []string) (string, error) {
	deadline := time.Duration(c.Cfg.NavigationTimeoutSecs) * time.Second

	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", c.Cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	c.enableResourceBlocking(tabCtx)

	if err := chromedp.Run(tabCtx,
		fetch.Enable(),
		chromedp.Navigate(pageURL),
	); err != nil {
		return "", errors.Wrap(err, "erro ao navegar para a página de resultados")
	}

	c.awaitReadiness(tabCtx, readinessSelectors)

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", errors.Wrap(err, "erro ao capturar o HTML renderizado")
	}

	if len(html) == 0 {
		return "", errors.New("a página renderizada não retornou conteúdo")
	}

	return html, nil
}

// enableResourceBlocking intercepta as requisições da aba e descarta os
// recursos pesados que não afetam a extração
func (c *BrowserClient) enableResourceBlocking(tabCtx context.Context) {
	chromedp.ListenTarget(tabCtx, func(event interface{}) {
		paused, ok := event.(*fetch.EventRequestPaused)
		if !ok {
			return
		}

		go func() {
			executor := cdp.WithExecutor(tabCtx, chromedp.FromContext(tabCtx).Target)

			if blockedResourceTypes[paused.ResourceType] {
				if err := fetch.FailRequest(paused.RequestID, network.ErrorReasonBlockedByClient).Do(executor); err != nil {
					logrus.WithError(err).Debug("Falha ao bloquear recurso da página")
				}
				return
			}

			if err := fetch.ContinueRequest(paused.RequestID).Do(executor); err != nil {
				logrus.WithError(err).Debug("Falha ao liberar requisição da página")
			}
		}()
	})
}

// awaitReadiness espera cada seletor de prontidão na ordem configurada, cada
// um com seu próprio tempo limite. Quando nenhum seletor aparece, cai no
// atraso fixo de acomodação: a verificação de conteúdo fica a cargo do
// chamador, que sabe interpretar o HTML
func (c *BrowserClient) awaitReadiness(tabCtx context.Context, readinessSelectors []string) {
	selectorTimeout := time.Duration(c.Cfg.SelectorTimeoutMillis) * time.Millisecond

	for _, selector := range readinessSelectors {
		waitCtx, cancelWait := context.WithTimeout(tabCtx, selectorTimeout)
		err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery))
		cancelWait()

		if err == nil {
			return
		}

		logrus.WithField("selector", selector).Debug("Seletor de prontidão não encontrado, tentando o próximo")
	}

	// Nenhum seletor respondeu: dá tempo para o conteúdo dinâmico assentar
	settle := time.Duration(c.Cfg.SettleDelayMillis) * time.Millisecond

	select {
	case <-time.After(settle):
	case <-tabCtx.Done():
	}
}
