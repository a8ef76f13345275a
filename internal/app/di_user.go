package app

import (
	"context"
	"fmt"
	"sync"

	userHTTP "github.com/allisson/notes/internal/user/http"
	userRepository "github.com/allisson/notes/internal/user/repository"
	userUsecase "github.com/allisson/notes/internal/user/usecase"
)

// userComponents holds the lazily initialized user feature dependencies.
type userComponents struct {
	userRepo    userUsecase.UserRepository
	userUseCase userUsecase.UseCase
	userHandler *userHTTP.UserHandler

	userRepoInit    sync.Once
	userUseCaseInit sync.Once
	userHandlerInit sync.Once
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		repo, err := c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.userRepo = repo
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase(ctx context.Context) (userUsecase.UseCase, error) {
	c.userUseCaseInit.Do(func() {
		useCase, err := c.initUserUseCase(ctx)
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUseCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler(ctx context.Context) (*userHTTP.UserHandler, error) {
	c.userHandlerInit.Do(func() {
		useCase, err := c.UserUseCase(ctx)
		if err != nil {
			c.initErrors["userHandler"] = fmt.Errorf("failed to get user use case for user handler: %w", err)
			return
		}
		c.userHandler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase(ctx context.Context) (userUsecase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for user use case: %w", err)
	}

	tokenCodec, err := c.TokenCodec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for user use case: %w", err)
	}

	baseUseCase := userUsecase.NewUserUseCase(txManager, userRepo, passwordService, tokenCodec)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUsecase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
