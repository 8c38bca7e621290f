package server

import (
	"encoding/json"
	"net/http"

	"github.com/sahas-01/ChefGPT/internal/recipe"
	"github.com/sahas-01/ChefGPT/internal/store"
)

type addIngredientsRequest struct {
	Names []string `json:"names"`
}

// handleListIngredients lists the pantry.
//
// @Summary  List pantry ingredients
// @Tags     pantry
// @Produce  json
// @Success  200  {array}  recipe.Ingredient
// @Router   /api/ingredients [get]
func (s *Server) handleListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := s.deps.Pantry.Ingredients(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ingredients == nil {
		ingredients = []recipe.Ingredient{}
	}
	writeJSON(w, http.StatusOK, ingredients)
}

// handleAddIngredients appends ingredients by name.
//
// @Summary  Add pantry ingredients
// @Tags     pantry
// @Accept   json
// @Produce  json
// @Param    request  body  addIngredientsRequest  true  "Ingredient names"
// @Success  200  {array}  recipe.Ingredient  "The newly added ingredients with generated ids"
// @Router   /api/ingredients [post]
func (s *Server) handleAddIngredients(w http.ResponseWriter, r *http.Request) {
	var req addIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid json: "+err.Error())
		return
	}

	names := make([]string, 0, len(req.Names))
	for _, name := range req.Names {
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		writeBadRequest(w, "no ingredient names provided")
		return
	}

	added, err := s.deps.Pantry.AddIngredients(r.Context(), names)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, added)
}

// handleClearIngredients empties the pantry.
//
// @Summary  Clear the pantry
// @Tags     pantry
// @Success  204
// @Router   /api/ingredients [delete]
func (s *Server) handleClearIngredients(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Pantry.ClearIngredients(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRemoveIngredient removes one ingredient.
//
// @Summary  Remove a pantry ingredient
// @Tags     pantry
// @Param    id  path  string  true  "Ingredient id"
// @Success  204
// @Failure  404  {object}  errorEnvelope
// @Router   /api/ingredients/{id} [delete]
func (s *Server) handleRemoveIngredient(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Pantry.RemoveIngredient(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleExpiring flips the expiring flag.
//
// @Summary  Toggle the expiring-soon flag
// @Tags     pantry
// @Produce  json
// @Param    id  path  string  true  "Ingredient id"
// @Success  200  {object}  recipe.Ingredient
// @Failure  404  {object}  errorEnvelope
// @Router   /api/ingredients/{id}/expiring [post]
func (s *Server) handleToggleExpiring(w http.ResponseWriter, r *http.Request) {
	ing, err := s.deps.Pantry.ToggleExpiring(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ing)
}

// handleListFavorites lists favorited recipes as full objects.
//
// @Summary  List favorites
// @Tags     favorites
// @Produce  json
// @Success  200  {array}  recipe.Recipe
// @Router   /api/favorites [get]
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.deps.Pantry.Favorites(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if favorites == nil {
		favorites = []recipe.Recipe{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

// handleAddFavorite favorites a full recipe, so generated recipes survive a
// reload instead of dangling as unresolvable ids.
//
// @Summary  Add a favorite
// @Tags     favorites
// @Accept   json
// @Param    request  body  recipe.Recipe  true  "The full recipe to favorite"
// @Success  204
// @Router   /api/favorites [put]
func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var rec recipe.Recipe
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeBadRequest(w, "invalid json: "+err.Error())
		return
	}
	if rec.ID == "" {
		writeBadRequest(w, "recipe id is required")
		return
	}
	if err := rec.Validate(); err != nil {
		writeBadRequest(w, "invalid recipe: "+err.Error())
		return
	}

	if err := s.deps.Pantry.AddFavorite(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRemoveFavorite unfavorites a recipe.
//
// @Summary  Remove a favorite
// @Tags     favorites
// @Param    id  path  string  true  "Recipe id"
// @Success  204
// @Failure  404  {object}  errorEnvelope
// @Router   /api/favorites/{id} [delete]
func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Pantry.RemoveFavorite(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type preferencesBody struct {
	PreferredCuisine string `json:"preferredCuisine,omitempty"`
	UserLanguage     string `json:"userLanguage,omitempty"`
}

// handleGetPreferences reads the stored preferences.
//
// @Summary  Get preferences
// @Tags     preferences
// @Produce  json
// @Success  200  {object}  preferencesBody
// @Router   /api/preferences [get]
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	cuisine, err := s.deps.Pantry.Preference(r.Context(), store.PrefCuisine)
	if err != nil {
		writeError(w, err)
		return
	}
	language, err := s.deps.Pantry.Preference(r.Context(), store.PrefLanguage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesBody{PreferredCuisine: cuisine, UserLanguage: language})
}

// handlePutPreferences writes preferences. Omitted fields are left unchanged.
//
// @Summary  Update preferences
// @Tags     preferences
// @Accept   json
// @Param    request  body  preferencesBody  true  "Preferences to set"
// @Success  204
// @Router   /api/preferences [put]
func (s *Server) handlePutPreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid json: "+err.Error())
		return
	}

	if req.PreferredCuisine != "" {
		if err := s.deps.Pantry.SetPreference(r.Context(), store.PrefCuisine, req.PreferredCuisine); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.UserLanguage != "" {
		if err := s.deps.Pantry.SetPreference(r.Context(), store.PrefLanguage, req.UserLanguage); err != nil {
			writeError(w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
