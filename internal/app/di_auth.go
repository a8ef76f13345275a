package app

import (
	"context"
	"fmt"
	"sync"

	authHTTP "github.com/allisson/notes/internal/auth/http"
	authService "github.com/allisson/notes/internal/auth/service"
	authUseCase "github.com/allisson/notes/internal/auth/usecase"
)

// authComponents holds the lazily initialized authentication dependencies.
type authComponents struct {
	passwordService authService.PasswordService
	tokenCodec      authService.TokenCodec
	authUseCase     authUseCase.AuthUseCase
	loginHandler    *authHTTP.LoginHandler

	passwordServiceInit sync.Once
	tokenCodecInit      sync.Once
	authUseCaseInit     sync.Once
	loginHandlerInit    sync.Once
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	c.passwordServiceInit.Do(func() {
		passwordService, err := authService.NewPasswordService()
		if err != nil {
			c.initErrors["passwordService"] = fmt.Errorf("failed to create password service: %w", err)
			return
		}
		c.passwordService = passwordService
	})
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.passwordService, nil
}

// TokenCodec returns the auth token codec.
// The signing key is loaded once, decrypting the KMS ciphertext when configured.
func (c *Container) TokenCodec(ctx context.Context) (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		signingKey, err := authService.LoadSigningKey(
			ctx,
			c.config.JWTSecret,
			c.config.JWTSecretCiphertext,
			c.config.KMSKeyURI,
		)
		if err != nil {
			c.initErrors["tokenCodec"] = fmt.Errorf("failed to load signing key: %w", err)
			return
		}
		c.tokenCodec = authService.NewTokenCodec(signingKey, c.config.AuthTokenExpiration)
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// AuthUseCase returns the authentication use case instance.
func (c *Container) AuthUseCase(ctx context.Context) (authUseCase.AuthUseCase, error) {
	c.authUseCaseInit.Do(func() {
		useCase, err := c.initAuthUseCase(ctx)
		if err != nil {
			c.initErrors["authUseCase"] = err
			return
		}
		c.authUseCase = useCase
	})
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// LoginHandler returns the login HTTP handler.
func (c *Container) LoginHandler(ctx context.Context) (*authHTTP.LoginHandler, error) {
	c.loginHandlerInit.Do(func() {
		useCase, err := c.AuthUseCase(ctx)
		if err != nil {
			c.initErrors["loginHandler"] = fmt.Errorf("failed to get auth use case for login handler: %w", err)
			return
		}
		c.loginHandler = authHTTP.NewLoginHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["loginHandler"]; exists {
		return nil, storedErr
	}
	return c.loginHandler, nil
}

// initAuthUseCase creates the auth use case with all its dependencies.
func (c *Container) initAuthUseCase(ctx context.Context) (authUseCase.AuthUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for auth use case: %w", err)
	}

	tokenCodec, err := c.TokenCodec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(userRepo, passwordService, tokenCodec, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
