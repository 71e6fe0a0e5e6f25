package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insight-srv/internal/account"
	"insight-srv/internal/account/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/graphapi"
	"insight-srv/pkg/paginator"
)

// Connect validates the token against the Graph API before anything is
// stored, so a bad token never reaches the database.
func (uc *implUseCase) Connect(ctx context.Context, sc model.Scope, input account.ConnectInput) (account.ConnectOutput, error) {
	// Step 1: Prove the token works for this IG user
	profile, err := uc.graphClient.GetProfile(ctx, input.IGUserID, input.AccessToken)
	if err != nil {
		if errors.Is(err, graphapi.ErrTokenInvalid) {
			return account.ConnectOutput{}, account.ErrInvalidToken
		}
		return account.ConnectOutput{}, fmt.Errorf("failed to validate token: %w", err)
	}

	// Step 2: Encrypt the token for storage
	encToken, err := uc.encrypter.Encrypt(input.AccessToken)
	if err != nil {
		return account.ConnectOutput{}, fmt.Errorf("failed to encrypt token: %w", err)
	}

	// Step 3: Reactivate if already connected by this user, reject if by another
	existing, err := uc.repo.GetByIGUserID(ctx, input.IGUserID)
	if err == nil {
		if existing.ConnectedBy != sc.UserID {
			return account.ConnectOutput{}, account.ErrAlreadyConnected
		}

		if err := uc.repo.UpdateToken(ctx, existing.ID, encToken); err != nil {
			return account.ConnectOutput{}, fmt.Errorf("failed to update token: %w", err)
		}
		if err := uc.repo.UpdateProfile(ctx, existing.ID, toProfileOptions(profile)); err != nil {
			return account.ConnectOutput{}, fmt.Errorf("failed to update profile: %w", err)
		}

		uc.l.Infof(ctx, "account.usecase.Connect: reactivated account %s for user %s", existing.ID, sc.UserID)
		return account.ConnectOutput{ID: existing.ID, Username: profile.Username, Existing: true}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return account.ConnectOutput{}, fmt.Errorf("failed to look up account: %w", err)
	}

	// Step 4: First connection, create the row
	acc, err := uc.repo.Create(ctx, repository.CreateOptions{
		IGUserID:          input.IGUserID,
		Username:          profile.Username,
		Name:              profile.Name,
		FollowersCount:    profile.FollowersCount,
		MediaCount:        profile.MediaCount,
		ProfilePictureURL: profile.ProfilePictureURL,
		EncryptedToken:    encToken,
		ConnectedBy:       sc.UserID,
	})
	if err != nil {
		return account.ConnectOutput{}, fmt.Errorf("failed to create account: %w", err)
	}

	uc.l.Infof(ctx, "account.usecase.Connect: connected account %s (%s) for user %s", acc.ID, acc.Username, sc.UserID)
	return account.ConnectOutput{ID: acc.ID, Username: acc.Username}, nil
}

// GetDetail returns one account owned by the caller. Accounts of other
// users read as not found.
func (uc *implUseCase) GetDetail(ctx context.Context, sc model.Scope, accountID string) (model.Account, error) {
	acc, err := uc.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Account{}, account.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	if acc.ConnectedBy != sc.UserID {
		return model.Account{}, account.ErrNotFound
	}
	return acc, nil
}

// GetList returns the caller's connected accounts.
func (uc *implUseCase) GetList(ctx context.Context, sc model.Scope, input account.GetListInput) ([]model.Account, paginator.Paginator, error) {
	accounts, pag, err := uc.repo.List(ctx, repository.ListOptions{
		ConnectedBy: sc.UserID,
		PagQuery:    input.PagQuery,
	})
	if err != nil {
		return nil, paginator.Paginator{}, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, pag, nil
}

// RefreshProfile re-reads the profile from the Graph API and persists it.
func (uc *implUseCase) RefreshProfile(ctx context.Context, sc model.Scope, accountID string) (model.Account, error) {
	// Step 1: Ownership
	acc, err := uc.GetDetail(ctx, sc, accountID)
	if err != nil {
		return model.Account{}, err
	}

	// Step 2: Decrypt the stored token
	accessToken, err := uc.GetAccessToken(ctx, accountID)
	if err != nil {
		return model.Account{}, err
	}

	// Step 3: Fetch the profile; a rejected token flips the account to EXPIRED
	profile, err := uc.graphClient.GetProfile(ctx, acc.IGUserID, accessToken)
	if err != nil {
		if errors.Is(err, graphapi.ErrTokenInvalid) {
			if markErr := uc.MarkTokenExpired(ctx, accountID); markErr != nil {
				uc.l.Errorf(ctx, "account.usecase.RefreshProfile: failed to mark token expired: %v", markErr)
			}
			return model.Account{}, account.ErrTokenExpired
		}
		return model.Account{}, fmt.Errorf("failed to fetch profile: %w", err)
	}

	// Step 4: Persist
	if err := uc.repo.UpdateProfile(ctx, accountID, toProfileOptions(profile)); err != nil {
		return model.Account{}, fmt.Errorf("failed to update profile: %w", err)
	}

	acc.Username = profile.Username
	acc.Name = profile.Name
	acc.FollowersCount = profile.FollowersCount
	acc.MediaCount = profile.MediaCount
	acc.ProfilePictureURL = profile.ProfilePictureURL
	return acc, nil
}

// Disconnect removes the account and its stored token.
func (uc *implUseCase) Disconnect(ctx context.Context, sc model.Scope, accountID string) error {
	if _, err := uc.GetDetail(ctx, sc, accountID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return account.ErrNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.l.Infof(ctx, "account.usecase.Disconnect: removed account %s for user %s", accountID, sc.UserID)
	return nil
}

// GetByID loads an account without ownership checks. Internal use only.
func (uc *implUseCase) GetByID(ctx context.Context, accountID string) (model.Account, error) {
	acc, err := uc.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Account{}, account.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return acc, nil
}

// GetAccessToken returns the decrypted Graph token. Internal use only.
func (uc *implUseCase) GetAccessToken(ctx context.Context, accountID string) (string, error) {
	enc, err := uc.repo.GetEncryptedToken(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", account.ErrNotFound
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}

	token, err := uc.encrypter.Decrypt(enc)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt token: %w", err)
	}
	return token, nil
}

// MarkTokenExpired flags the account as needing reconnection.
func (uc *implUseCase) MarkTokenExpired(ctx context.Context, accountID string) error {
	if err := uc.repo.UpdateTokenStatus(ctx, accountID, model.TokenStatusExpired); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return account.ErrNotFound
		}
		return fmt.Errorf("failed to update token status: %w", err)
	}
	return nil
}

// MarkSynced records the completion time of the last successful sync.
func (uc *implUseCase) MarkSynced(ctx context.Context, accountID string, syncedAt time.Time) error {
	if err := uc.repo.UpdateLastSyncedAt(ctx, repository.UpdateLastSyncedAtOptions{
		ID:       accountID,
		SyncedAt: syncedAt,
	}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return account.ErrNotFound
		}
		return fmt.Errorf("failed to update last synced at: %w", err)
	}
	return nil
}
