// Package app wires the editor together: it loads the document, owns the
// event loop and writes the document back on quit.
package app

import (
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/dshills/pine/internal/config"
	"github.com/dshills/pine/internal/engine"
	"github.com/dshills/pine/internal/input"
	"github.com/dshills/pine/internal/renderer"
	"github.com/dshills/pine/internal/renderer/backend"
)

// Application runs one editing session on one file.
type Application struct {
	cfg config.Config
	log *logrus.Entry

	doc        *Document
	backend    backend.Backend
	engine     *engine.Engine
	renderer   *renderer.Renderer
	translator *input.Translator

	running atomic.Bool
}

// New opens the document at path. A missing file is created empty. A nil
// log discards all output.
func New(path string, cfg config.Config, log *logrus.Entry) (*Application, error) {
	if log == nil {
		log = discardLogger()
	}

	doc, err := OpenDocument(path)
	if err != nil {
		log.WithError(err).Error("open document")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"path":    doc.Path,
		"created": doc.Created,
		"lines":   doc.LineCount(),
		"size":    humanize.Bytes(uint64(len(doc.Content()))),
	}).Info("document loaded")

	return &Application{
		cfg:        cfg,
		log:        log,
		doc:        doc,
		translator: input.NewTranslator(renderer.TextAreaSize),
	}, nil
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Engine returns the editing engine, or nil before Run.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// SetBackend sets the terminal the application draws to.
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run takes over the terminal and edits the document until quit. The
// document is written back before Run returns ErrQuit. The terminal is
// restored on every return path.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		err = &InitError{Component: "backend", Err: err}
		app.log.WithError(err).Error("terminal init")
		return err
	}
	defer app.backend.Shutdown()

	width, height := renderer.TextAreaSize(app.backend.Size())
	app.engine = engine.New(
		engine.WithContent(app.doc.Content()),
		engine.WithTabWidth(app.cfg.Editor.TabWidth),
		engine.WithSize(width, height),
	)
	app.renderer = renderer.New(app.backend, app.doc.Path)

	return app.eventLoop()
}

func (app *Application) eventLoop() error {
	app.renderer.Render(app.engine.Snapshot())

	for {
		ev := app.backend.PollEvent()
		cmd, ok := app.translator.Translate(ev)
		if !ok {
			continue
		}

		if ev.Type == backend.EventResize {
			app.log.WithFields(logrus.Fields{
				"width":  ev.Width,
				"height": ev.Height,
			}).Debug("resize")
		}

		result := app.engine.Apply(cmd)
		if result.Quit {
			return app.quit(ev.Type)
		}
		if result.Redraw {
			app.renderer.Render(app.engine.Snapshot())
		}
	}
}

// quit writes the document back and ends the loop.
func (app *Application) quit(cause backend.EventType) error {
	log := app.log.WithFields(logrus.Fields{
		"path":  app.doc.Path,
		"cause": cause.String(),
	})
	log.Info("quit")

	if err := app.doc.Save(app.engine.Text()); err != nil {
		log.WithError(err).Error("write back")
		return err
	}
	app.engine.MarkSaved()

	log.WithField("lines", app.engine.LineCount()).Info("document saved")
	return ErrQuit
}
