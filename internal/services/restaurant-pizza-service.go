package services

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService manages the prices at which restaurants sell pizzas
type RestaurantPizzaService interface {
	// GetAllRestaurantPizzas retrieves every join record with both parents loaded
	GetAllRestaurantPizzas() ([]models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves one join record with both parents loaded
	GetRestaurantPizzaByID(id uint) (models.RestaurantPizza, error)
	// CreateRestaurantPizza validates the price and links a pizza to a restaurant
	CreateRestaurantPizza(price int, restaurantID, pizzaID uint) (models.RestaurantPizza, error)
	// CreateRestaurantPizzas inserts a batch in one transaction, nothing is kept if any row fails
	CreateRestaurantPizzas(batch []models.RestaurantPizza) ([]models.RestaurantPizza, error)
	// UpdatePrice changes the price of a join record, keeping the stored price on rejection
	UpdatePrice(id uint, price int) (models.RestaurantPizza, error)
	// DeleteRestaurantPizza removes a join record
	DeleteRestaurantPizza(id uint) error
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) withParents(db *gorm.DB) *gorm.DB {
	return db.Preload("Restaurant").Preload("Pizza")
}

func (s *restaurantPizzaService) GetAllRestaurantPizzas() ([]models.RestaurantPizza, error) {
	var restaurantPizzas []models.RestaurantPizza
	if err := s.withParents(s.db).Order("id").Find(&restaurantPizzas).Error; err != nil {
		return nil, err
	}
	return restaurantPizzas, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(id uint) (models.RestaurantPizza, error) {
	var restaurantPizza models.RestaurantPizza
	if err := s.withParents(s.db).First(&restaurantPizza, id).Error; err != nil {
		return models.RestaurantPizza{}, err
	}
	return restaurantPizza, nil
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price int, restaurantID, pizzaID uint) (models.RestaurantPizza, error) {
	restaurantPizza, err := models.NewRestaurantPizza(price, restaurantID, pizzaID)
	if err != nil {
		log.WithFields(logrus.Fields{
			"price":         price,
			"restaurant_id": restaurantID,
			"pizza_id":      pizzaID,
		}).Debug("Rejected restaurant pizza")
		return models.RestaurantPizza{}, err
	}

	if err := s.db.Omit(clause.Associations).Create(restaurantPizza).Error; err != nil {
		return models.RestaurantPizza{}, err
	}
	return s.GetRestaurantPizzaByID(restaurantPizza.ID)
}

func (s *restaurantPizzaService) CreateRestaurantPizzas(batch []models.RestaurantPizza) ([]models.RestaurantPizza, error) {
	created := make([]models.RestaurantPizza, 0, len(batch))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := range batch {
			restaurantPizza, err := models.NewRestaurantPizza(batch[i].Price, batch[i].RestaurantID, batch[i].PizzaID)
			if err != nil {
				return fmt.Errorf("restaurant pizza %d: %w", i, err)
			}
			if err := tx.Omit(clause.Associations).Create(restaurantPizza).Error; err != nil {
				return fmt.Errorf("restaurant pizza %d: %w", i, err)
			}
			created = append(created, *restaurantPizza)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *restaurantPizzaService) UpdatePrice(id uint, price int) (models.RestaurantPizza, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var restaurantPizza models.RestaurantPizza
		if err := tx.First(&restaurantPizza, id).Error; err != nil {
			return err
		}
		if err := restaurantPizza.SetPrice(price); err != nil {
			return err
		}
		return tx.Model(&restaurantPizza).Update("price", price).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return s.GetRestaurantPizzaByID(id)
}

func (s *restaurantPizzaService) DeleteRestaurantPizza(id uint) error {
	result := s.db.Delete(&models.RestaurantPizza{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
