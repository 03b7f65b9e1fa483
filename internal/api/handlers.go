package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ageumenezesDev19/DesPensa/internal/api/dto"
	"github.com/ageumenezesDev19/DesPensa/internal/application/service"
	"github.com/ageumenezesDev19/DesPensa/internal/domain/matcher"
	"github.com/ageumenezesDev19/DesPensa/internal/domain/stock"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.svc.ListProducts()
	if err != nil {
		s.internalError(c, "listing products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.svc.GetProduct(c.Param("code"))
	if err != nil {
		s.internalError(c, "reading product", err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, dto.NewAPIError(dto.ErrCodeNotFound, "product not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (s *Server) importProducts(c *gin.Context) {
	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if len(req.Products) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "no products in request"))
		return
	}

	if err := s.svc.ImportProducts(req.Products); err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, err.Error()))
			return
		}
		s.internalError(c, "importing products", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": len(req.Products)})
}

func (s *Server) searchNearest(c *gin.Context) {
	target, ok := parsePrice(c)
	if !ok {
		return
	}

	if nParam := c.Query("n"); nParam != "" {
		n, err := strconv.Atoi(nParam)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "n must be a positive integer"))
			return
		}
		products, err := s.svc.FindNearestN(target, n)
		if err != nil {
			s.internalError(c, "nearest search", err)
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, dto.NewAPIError(dto.ErrCodeNotFound, "no eligible products"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
		return
	}

	product, err := s.svc.FindNearest(target)
	if err != nil {
		s.internalError(c, "nearest search", err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, dto.NewAPIError(dto.ErrCodeNotFound, "no eligible products"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (s *Server) searchCombination(c *gin.Context) {
	var req dto.CombinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if req.TargetPrice <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "target_price must be positive"))
		return
	}

	combination, err := s.svc.FindCombination(req.TargetPrice, req.UsedCodes)
	if err != nil {
		if errors.Is(err, matcher.ErrSearchTooLarge) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewAPIError(dto.ErrCodeSearchTooLarge, err.Error()))
			return
		}
		s.internalError(c, "combination search", err)
		return
	}
	if combination == nil {
		c.JSON(http.StatusNotFound, dto.NewAPIError(dto.ErrCodeNotFound, "no combination within tolerance"))
		return
	}

	c.JSON(http.StatusOK, dto.CombinationResponse{
		Combination: combination,
		Total:       combination.Total(),
		Diff:        math.Abs(combination.Total() - req.TargetPrice),
	})
}

func (s *Server) withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if req.Code == "" {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "code is required"))
		return
	}

	conf, err := s.svc.Withdraw(req.Code, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewAPIError(dto.ErrCodeNotFound, err.Error()))
		case errors.Is(err, stock.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeInvalidQuantity, err.Error()))
		default:
			s.internalError(c, "withdrawing stock", err)
		}
		return
	}

	c.JSON(http.StatusCreated, conf)
}

func (s *Server) listWithdrawals(c *gin.Context) {
	records, err := s.svc.ListWithdrawals()
	if err != nil {
		s.internalError(c, "listing withdrawals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": records})
}

func (s *Server) clearWithdrawals(c *gin.Context) {
	if err := s.svc.ClearWithdrawals(); err != nil {
		s.internalError(c, "clearing withdrawals", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listExclusions(c *gin.Context) {
	terms, err := s.svc.Exclusions()
	if err != nil {
		s.internalError(c, "listing exclusions", err)
		return
	}
	if terms == nil {
		terms = []string{}
	}
	c.JSON(http.StatusOK, dto.ExclusionsResponse{Terms: terms})
}

func (s *Server) addExclusion(c *gin.Context) {
	var req dto.ExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "invalid request body"))
		return
	}

	added, err := s.svc.AddExclusion(req.Term)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTerm) {
			c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "term is required"))
			return
		}
		s.internalError(c, "adding exclusion", err)
		return
	}

	if !added {
		c.JSON(http.StatusOK, gin.H{"status": "exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

func (s *Server) removeExclusion(c *gin.Context) {
	removed, err := s.svc.RemoveExclusion(c.Param("term"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyTerm) {
			c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "term is required"))
			return
		}
		s.internalError(c, "removing exclusion", err)
		return
	}

	if !removed {
		c.JSON(http.StatusNotFound, dto.NewAPIError(dto.ErrCodeNotFound, "term not in exclusion list"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.logger.Error(op, "error", err)
	c.JSON(http.StatusInternalServerError, dto.NewAPIError(dto.ErrCodeInternalError, "an internal error occurred"))
}

// parsePrice reads the required price query parameter. Comma decimal
// separators are accepted the way the desktop frontend sends them.
func parsePrice(c *gin.Context) (float64, bool) {
	raw := c.Query("price")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "price is required"))
		return 0, false
	}

	normalized := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == ',' {
			normalized = append(normalized, '.')
		} else {
			normalized = append(normalized, raw[i])
		}
	}

	price, err := strconv.ParseFloat(string(normalized), 64)
	if err != nil || price <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewAPIError(dto.ErrCodeBadRequest, "price must be a positive number"))
		return 0, false
	}
	return price, true
}
