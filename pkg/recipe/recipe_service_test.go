package recipe

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"
	"testing"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes   map[uuid.UUID]*entities.Recipe
	history   []*entities.RecipeEditHistory
	ratings   map[string]int
	bookmarks map[string]bool
	members   map[string]bool
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes:   map[uuid.UUID]*entities.Recipe{},
		ratings:   map[string]int{},
		bookmarks: map[string]bool{},
		members:   map[string]bool{},
	}
}

func (f *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error {
	f.recipes[recipe.ID] = recipe
	history.RecipeID = recipe.ID
	f.history = append(f.history, history)
	return nil
}

func (f *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	recipe, ok := f.recipes[recipeID]
	if !ok || recipe.Status != entities.RecipeStatusActive {
		return nil, gorm.ErrRecordNotFound
	}
	return recipe, nil
}

func (f *fakeRecipeRepository) GetRecipes(_ context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var active []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.Status == entities.RecipeStatusActive {
			active = append(active, recipe)
		}
	}
	return active, int64(len(active)), nil
}

func (f *fakeRecipeRepository) GetRecipesByOwner(_ context.Context, ownerID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var owned []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.Status == entities.RecipeStatusActive && recipe.OwnerID.String() == ownerID {
			owned = append(owned, recipe)
		}
	}
	return owned, int64(len(owned)), nil
}

func (f *fakeRecipeRepository) DiscoverRecipes(_ context.Context, req domain.DiscoverRecipesRequest) ([]*entities.Recipe, error) {
	var matched []*entities.Recipe
	for _, recipe := range f.recipes {
		if recipe.Status != entities.RecipeStatusActive {
			continue
		}
		if req.Name != "" && !strings.Contains(strings.ToLower(recipe.Title), strings.ToLower(req.Name)) {
			continue
		}
		if req.Country != "" && recipe.Country != req.Country {
			continue
		}
		if req.PeopleServed > 0 && recipe.PeopleServed != req.PeopleServed {
			continue
		}
		matched = append(matched, recipe)
	}
	return matched, nil
}

func (f *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error {
	f.recipes[recipe.ID] = recipe
	if history != nil {
		f.history = append(f.history, history)
	}
	return nil
}

func (f *fakeRecipeRepository) SoftDeleteRecipe(_ context.Context, recipe *entities.Recipe, history *entities.RecipeEditHistory) error {
	recipe.Status = entities.RecipeStatusDeleted
	f.recipes[recipe.ID] = recipe
	f.history = append(f.history, history)
	return nil
}

func (f *fakeRecipeRepository) GetEditHistory(_ context.Context, recipeID string) ([]*entities.RecipeEditHistory, error) {
	// Newest first, like the repository ordering
	var entries []*entities.RecipeEditHistory
	for i := len(f.history) - 1; i >= 0; i-- {
		if f.history[i].RecipeID.String() == recipeID {
			entries = append(entries, f.history[i])
		}
	}
	return entries, nil
}

func (f *fakeRecipeRepository) IsGroupMemberForRecipe(_ context.Context, recipeID, userID string) (bool, error) {
	return f.members[recipeID+"/"+userID], nil
}

func (f *fakeRecipeRepository) SaveRating(_ context.Context, userID, recipeID string, value int) error {
	f.ratings[userID+"/"+recipeID] = value
	return nil
}

func (f *fakeRecipeRepository) GetRatingStats(_ context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]RatingStats, error) {
	stats := map[uuid.UUID]RatingStats{}
	for _, id := range recipeIDs {
		var sum, count int64
		for key, value := range f.ratings {
			if strings.HasSuffix(key, "/"+id.String()) {
				sum += int64(value)
				count++
			}
		}
		if count > 0 {
			stats[id] = RatingStats{RecipeID: id, Average: float64(sum) / float64(count), Count: count}
		}
	}
	return stats, nil
}

func (f *fakeRecipeRepository) CreateBookmark(_ context.Context, userID, recipeID string) (bool, error) {
	key := userID + "/" + recipeID
	if f.bookmarks[key] {
		return false, nil
	}
	f.bookmarks[key] = true
	return true, nil
}

func (f *fakeRecipeRepository) RemoveBookmark(_ context.Context, userID, recipeID string) (bool, error) {
	key := userID + "/" + recipeID
	if !f.bookmarks[key] {
		return false, nil
	}
	delete(f.bookmarks, key)
	return true, nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(objectKey string) error { return nil }

func (fakeS3) GetPublicLink(objectKey string) string { return "https://bucket.test/" + objectKey }

func newTestRecipe(t *testing.T, repo *fakeRecipeRepository, ownerID uuid.UUID) *entities.Recipe {
	t.Helper()
	recipe := &entities.Recipe{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        "Ugali na Sukuma",
		Country:      "Kenya",
		Ingredients:  `[{"name":"maize flour","quantity":"2 cups"}]`,
		Procedure:    `[{"step":1,"instruction":"Boil water"}]`,
		PeopleServed: 4,
		Status:       entities.RecipeStatusActive,
	}
	repo.recipes[recipe.ID] = recipe
	return recipe
}

func TestCreateRecipeWritesCreationHistory(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	ownerID := uuid.New()

	req := domain.CreateRecipeRequest{
		Title:        "Pilau",
		Country:      "Kenya",
		Ingredients:  []domain.Ingredient{{Name: "rice", Quantity: "3 cups"}},
		Procedure:    []domain.ProcedureStep{{Step: 1, Instruction: "Fry onions"}},
		PeopleServed: 6,
	}

	res, err := service.CreateRecipe(context.Background(), req, ownerID.String())
	require.NoError(t, err)
	assert.Equal(t, "Pilau", res.Title)

	require.Len(t, repo.history, 1)
	assert.Equal(t, domain.HistoryActionCreated, repo.history[0].Action)

	var changes map[string]any
	require.NoError(t, json.Unmarshal([]byte(repo.history[0].Changes), &changes))
	assert.Equal(t, true, changes["initial_creation"])
}

func TestUpdateRecipeRecordsFieldDiffs(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	ownerID := uuid.New()
	recipe := newTestRecipe(t, repo, ownerID)

	newTitle := "Ugali Deluxe"
	_, err := service.UpdateRecipe(context.Background(), recipe.ID.String(), domain.UpdateRecipeRequest{
		Title: &newTitle,
	}, ownerID.String())
	require.NoError(t, err)

	require.Len(t, repo.history, 1)
	assert.Equal(t, domain.HistoryActionUpdated, repo.history[0].Action)

	var changes map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(repo.history[0].Changes), &changes))
	assert.Equal(t, "Ugali na Sukuma", changes["title"]["old"])
	assert.Equal(t, "Ugali Deluxe", changes["title"]["new"])
}

func TestUpdateRecipeNoChangesNoHistory(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	ownerID := uuid.New()
	recipe := newTestRecipe(t, repo, ownerID)

	sameTitle := recipe.Title
	_, err := service.UpdateRecipe(context.Background(), recipe.ID.String(), domain.UpdateRecipeRequest{
		Title: &sameTitle,
	}, ownerID.String())
	require.NoError(t, err)

	assert.Empty(t, repo.history)
}

func TestUpdateRecipeDeniedForStranger(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	recipe := newTestRecipe(t, repo, uuid.New())

	newTitle := "Hijacked"
	_, err := service.UpdateRecipe(context.Background(), recipe.ID.String(), domain.UpdateRecipeRequest{
		Title: &newTitle,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
}

func TestUpdateRecipeAllowedForGroupMember(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	recipe := newTestRecipe(t, repo, uuid.New())
	member := uuid.New()
	repo.members[recipe.ID.String()+"/"+member.String()] = true

	newTitle := "Shared Edit"
	_, err := service.UpdateRecipe(context.Background(), recipe.ID.String(), domain.UpdateRecipeRequest{
		Title: &newTitle,
	}, member.String())
	require.NoError(t, err)
	assert.Equal(t, "Shared Edit", repo.recipes[recipe.ID].Title)
}

func TestDeleteRecipeOwnerOnly(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	ownerID := uuid.New()
	recipe := newTestRecipe(t, repo, ownerID)

	err := service.DeleteRecipe(context.Background(), recipe.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrOnlyOwnerCanDelete)
	assert.Equal(t, entities.RecipeStatusActive, repo.recipes[recipe.ID].Status)

	err = service.DeleteRecipe(context.Background(), recipe.ID.String(), ownerID.String())
	require.NoError(t, err)
	assert.Equal(t, entities.RecipeStatusDeleted, repo.recipes[recipe.ID].Status)

	// Soft deleted recipes disappear from reads
	_, err = service.GetRecipeByID(context.Background(), recipe.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRateRecipeValidatesRange(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	recipe := newTestRecipe(t, repo, uuid.New())
	raterID := uuid.New().String()

	err := service.RateRecipe(context.Background(), recipe.ID.String(), domain.RateRecipeRequest{Value: 6}, raterID)
	assert.ErrorIs(t, err, domain.ErrInvalidRatingValue)

	err = service.RateRecipe(context.Background(), recipe.ID.String(), domain.RateRecipeRequest{Value: 0}, raterID)
	assert.ErrorIs(t, err, domain.ErrInvalidRatingValue)
}

func TestRateRecipeOverwritesPreviousValue(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	recipe := newTestRecipe(t, repo, uuid.New())
	raterID := uuid.New().String()

	require.NoError(t, service.RateRecipe(context.Background(), recipe.ID.String(), domain.RateRecipeRequest{Value: 2}, raterID))
	require.NoError(t, service.RateRecipe(context.Background(), recipe.ID.String(), domain.RateRecipeRequest{Value: 5}, raterID))

	res, err := service.GetRecipeRating(context.Background(), recipe.ID.String())
	require.NoError(t, err)
	assert.Equal(t, float64(5), res.Average)
	assert.Equal(t, int64(1), res.Count)
}

func TestBookmarkRecipeIdempotent(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	recipe := newTestRecipe(t, repo, uuid.New())
	userID := uuid.New().String()

	created, err := service.BookmarkRecipe(context.Background(), recipe.ID.String(), userID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = service.BookmarkRecipe(context.Background(), recipe.ID.String(), userID)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestRemoveBookmarkMissing(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	recipe := newTestRecipe(t, repo, uuid.New())

	err := service.RemoveBookmark(context.Background(), recipe.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrBookmarkNotFound)
}

func TestGetEditHistoryRequiresAccess(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	ownerID := uuid.New()
	recipe := newTestRecipe(t, repo, ownerID)

	_, err := service.GetEditHistory(context.Background(), recipe.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	newTitle := "Revised"
	_, err = service.UpdateRecipe(context.Background(), recipe.ID.String(), domain.UpdateRecipeRequest{Title: &newTitle}, ownerID.String())
	require.NoError(t, err)

	entries, err := service.GetEditHistory(context.Background(), recipe.ID.String(), ownerID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.HistoryActionUpdated, entries[0].Action)
}

func TestCreateThenUpdateYieldsTwoHistoryEntries(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	ownerID := uuid.New()

	created, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:        "Chapati",
		Ingredients:  []domain.Ingredient{{Name: "flour", Quantity: "2 cups"}},
		Procedure:    []domain.ProcedureStep{{Step: 1, Instruction: "Knead dough"}},
		PeopleServed: 4,
	}, ownerID.String())
	require.NoError(t, err)

	newTitle := "Layered Chapati"
	_, err = service.UpdateRecipe(context.Background(), created.ID, domain.UpdateRecipeRequest{Title: &newTitle}, ownerID.String())
	require.NoError(t, err)

	require.Len(t, repo.history, 2)
	assert.Equal(t, domain.HistoryActionCreated, repo.history[0].Action)
	assert.Equal(t, domain.HistoryActionUpdated, repo.history[1].Action)

	// Reads come back newest first
	entries, err := service.GetEditHistory(context.Background(), created.ID, ownerID.String())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.HistoryActionUpdated, entries[0].Action)
	assert.Equal(t, domain.HistoryActionCreated, entries[1].Action)
}

func TestDiscoverRecipesFilters(t *testing.T) {
	repo := newFakeRecipeRepository()
	service := NewRecipeService(repo, fakeS3{})
	kenyan := newTestRecipe(t, repo, uuid.New())

	other := newTestRecipe(t, repo, uuid.New())
	other.Title = "Jollof Rice"
	other.Country = "Nigeria"

	res, err := service.DiscoverRecipes(context.Background(), domain.DiscoverRecipesRequest{Country: "Kenya"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, kenyan.ID.String(), res[0].ID)
}
