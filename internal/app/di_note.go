package app

import (
	"fmt"
	"sync"

	noteHTTP "github.com/allisson/notes/internal/note/http"
	noteRepository "github.com/allisson/notes/internal/note/repository"
	noteUsecase "github.com/allisson/notes/internal/note/usecase"
)

// noteComponents holds the lazily initialized note feature dependencies.
type noteComponents struct {
	noteRepo    noteUsecase.NoteRepository
	noteUseCase noteUsecase.UseCase
	noteHandler *noteHTTP.NoteHandler

	noteRepoInit    sync.Once
	noteUseCaseInit sync.Once
	noteHandlerInit sync.Once
}

// NoteRepository returns the note repository instance.
func (c *Container) NoteRepository() (noteUsecase.NoteRepository, error) {
	c.noteRepoInit.Do(func() {
		repo, err := c.initNoteRepository()
		if err != nil {
			c.initErrors["noteRepo"] = err
			return
		}
		c.noteRepo = repo
	})
	if storedErr, exists := c.initErrors["noteRepo"]; exists {
		return nil, storedErr
	}
	return c.noteRepo, nil
}

// NoteUseCase returns the note use case instance.
func (c *Container) NoteUseCase() (noteUsecase.UseCase, error) {
	c.noteUseCaseInit.Do(func() {
		useCase, err := c.initNoteUseCase()
		if err != nil {
			c.initErrors["noteUseCase"] = err
			return
		}
		c.noteUseCase = useCase
	})
	if storedErr, exists := c.initErrors["noteUseCase"]; exists {
		return nil, storedErr
	}
	return c.noteUseCase, nil
}

// NoteHandler returns the note HTTP handler.
func (c *Container) NoteHandler() (*noteHTTP.NoteHandler, error) {
	c.noteHandlerInit.Do(func() {
		useCase, err := c.NoteUseCase()
		if err != nil {
			c.initErrors["noteHandler"] = fmt.Errorf("failed to get note use case for note handler: %w", err)
			return
		}
		c.noteHandler = noteHTTP.NewNoteHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["noteHandler"]; exists {
		return nil, storedErr
	}
	return c.noteHandler, nil
}

// initNoteRepository creates the note repository based on the database driver.
func (c *Container) initNoteRepository() (noteUsecase.NoteRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for note repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return noteRepository.NewMySQLNoteRepository(db), nil
	case "postgres":
		return noteRepository.NewPostgreSQLNoteRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initNoteUseCase creates the note use case with all its dependencies.
func (c *Container) initNoteUseCase() (noteUsecase.UseCase, error) {
	noteRepo, err := c.NoteRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get note repository for note use case: %w", err)
	}

	baseUseCase := noteUsecase.NewNoteUseCase(noteRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for note use case: %w", err)
		}
		return noteUsecase.NewNoteUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
