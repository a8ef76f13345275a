package app

import (
	"fmt"
	"sync"

	labelHTTP "github.com/allisson/notes/internal/label/http"
	labelRepository "github.com/allisson/notes/internal/label/repository"
	labelUsecase "github.com/allisson/notes/internal/label/usecase"
)

// labelComponents holds the lazily initialized label feature dependencies.
type labelComponents struct {
	labelRepo    labelUsecase.LabelRepository
	labelUseCase labelUsecase.UseCase
	labelHandler *labelHTTP.LabelHandler

	labelRepoInit    sync.Once
	labelUseCaseInit sync.Once
	labelHandlerInit sync.Once
}

// LabelRepository returns the label repository instance.
func (c *Container) LabelRepository() (labelUsecase.LabelRepository, error) {
	c.labelRepoInit.Do(func() {
		repo, err := c.initLabelRepository()
		if err != nil {
			c.initErrors["labelRepo"] = err
			return
		}
		c.labelRepo = repo
	})
	if storedErr, exists := c.initErrors["labelRepo"]; exists {
		return nil, storedErr
	}
	return c.labelRepo, nil
}

// LabelUseCase returns the label use case instance.
func (c *Container) LabelUseCase() (labelUsecase.UseCase, error) {
	c.labelUseCaseInit.Do(func() {
		useCase, err := c.initLabelUseCase()
		if err != nil {
			c.initErrors["labelUseCase"] = err
			return
		}
		c.labelUseCase = useCase
	})
	if storedErr, exists := c.initErrors["labelUseCase"]; exists {
		return nil, storedErr
	}
	return c.labelUseCase, nil
}

// LabelHandler returns the label HTTP handler.
func (c *Container) LabelHandler() (*labelHTTP.LabelHandler, error) {
	c.labelHandlerInit.Do(func() {
		useCase, err := c.LabelUseCase()
		if err != nil {
			c.initErrors["labelHandler"] = fmt.Errorf("failed to get label use case for label handler: %w", err)
			return
		}
		c.labelHandler = labelHTTP.NewLabelHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["labelHandler"]; exists {
		return nil, storedErr
	}
	return c.labelHandler, nil
}

// initLabelRepository creates the label repository based on the database driver.
func (c *Container) initLabelRepository() (labelUsecase.LabelRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for label repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return labelRepository.NewMySQLLabelRepository(db), nil
	case "postgres":
		return labelRepository.NewPostgreSQLLabelRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initLabelUseCase creates the label use case with all its dependencies.
func (c *Container) initLabelUseCase() (labelUsecase.UseCase, error) {
	labelRepo, err := c.LabelRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get label repository for label use case: %w", err)
	}

	baseUseCase := labelUsecase.NewLabelUseCase(labelRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for label use case: %w", err)
		}
		return labelUsecase.NewLabelUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
