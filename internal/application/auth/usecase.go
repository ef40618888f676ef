package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-micro/internal/application/dto"
	"github.com/tu-usuario/inventario-micro/internal/application/ports"
	"github.com/tu-usuario/inventario-micro/internal/domain"
	"github.com/tu-usuario/inventario-micro/internal/domain/entity"
	"github.com/tu-usuario/inventario-micro/internal/domain/repository"
	"github.com/tu-usuario/inventario-micro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y
// resolución de identidad. Implementa ports.IdentityResolver para el propio
// servicio de usuarios; el resto de servicios resuelve vía HTTP.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

var _ ports.IdentityResolver = (*AuthUseCase)(nil)

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// SignUp crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado. El username
// no es único a propósito: el login toma el primer registro que coincida.
func (uc *AuthUseCase) SignUp(in dto.SignUpRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Token:        nil, // sin sesión hasta el primer signin
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// SignIn verifica username/password, emite un JWT y lo persiste como espejo en
// el registro del usuario. Username desconocido y password incorrecto son el
// mismo ErrUnauthorized: la respuesta no revela cuál de los dos falló.
func (uc *AuthUseCase) SignIn(in dto.SignInRequest) (*dto.SignInResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	// Un nuevo signin reemplaza el espejo: el token anterior queda revocado.
	if err := uc.userRepo.UpdateToken(user.ID, &token); err != nil {
		return nil, err
	}
	return &dto.SignInResponse{AccessToken: token}, nil
}

// Logout limpia el espejo del token. Tras esto el token presentado deja de
// resolver identidad aunque criptográficamente siga siendo válido.
func (uc *AuthUseCase) Logout(token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}
	userID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return domain.ErrInvalidToken
	}
	return uc.userRepo.UpdateToken(userID, nil)
}

// Resolve valida el token y devuelve la tripleta de identidad. Exige que el
// token presentado coincida con el espejo almacenado: así logout y el
// reemplazo de sesión revocan tokens estructuralmente válidos.
func (uc *AuthUseCase) Resolve(token string) (*ports.Identity, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	userID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Token == nil || *user.Token != token {
		return nil, domain.ErrInvalidToken
	}
	return &ports.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
