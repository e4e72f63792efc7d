package services

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantService provides methods to interact with the restaurants table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their pizzas
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its join records and pizzas loaded
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// CreateRestaurant inserts a new restaurant
	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// UpdateRestaurant updates the scalar fields of an existing restaurant
	UpdateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant, the database cascades to its join records
	DeleteRestaurant(id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Preload("RestaurantPizzas.Pizza").First(&restaurant, id).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	if err := s.db.Omit(clause.Associations).Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, err
	}
	log.WithField("restaurant_id", restaurant.ID).Debug("Restaurant created")
	return restaurant, nil
}

func (s *restaurantService) UpdateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	// Save inserts when nothing matched, so the row has to exist first
	if err := s.db.First(&models.Restaurant{}, restaurant.ID).Error; err != nil {
		return models.Restaurant{}, err
	}
	if err := s.db.Omit(clause.Associations).Save(&restaurant).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id uint) error {
	result := s.db.Delete(&models.Restaurant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	log.WithFields(logrus.Fields{"restaurant_id": id}).Info("Restaurant deleted")
	return nil
}
