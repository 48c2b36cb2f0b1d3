package voxel

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SceneModel representa o esquema do banco para um snapshot de cena.
type SceneModel struct {
	Name      string `gorm:"primaryKey"`
	Width     int
	Height    int
	Depth     int
	Data      []byte    // blocos serializados em GOB
	UpdatedAt time.Time // controle interno do GORM
}

// ColorModel armazena a cor personalizada de um tipo de bloco.
type ColorModel struct {
	Block   uint8 `gorm:"primaryKey;autoIncrement:false"`
	R, G, B uint8
}

// SceneMetadata guarda informações globais do arquivo de saves.
type SceneMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const CurrentFormatVersion = 1

// SceneStore persiste snapshots de cena e cores personalizadas em SQLite.
type SceneStore struct {
	DB *gorm.DB
}

// OpenStore abre (ou cria) o banco SQLite em saves/ e roda as migrações.
func OpenStore(fileName string) (*SceneStore, error) {
	if err := os.MkdirAll("saves", 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join("saves", fileName+".cv")

	// Logger silencioso em produção.
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&SceneModel{}, &ColorModel{}, &SceneMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}

	db.Save(&SceneMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[Persistence] Banco SQLite aberto: %s", dbPath)
	return &SceneStore{DB: db}, nil
}

// SaveScene grava (upsert) um snapshot do grid sob o nome dado.
func (s *SceneStore) SaveScene(name string, g *Grid) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("banco de dados não inicializado")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(g.Blocks()); err != nil {
		return fmt.Errorf("falha ao serializar blocos: %w", err)
	}

	model := SceneModel{
		Name:   name,
		Width:  g.W,
		Height: g.H,
		Depth:  g.D,
		Data:   buf.Bytes(),
	}
	if err := s.DB.Save(&model).Error; err != nil {
		return fmt.Errorf("falha ao salvar cena %q: %w", name, err)
	}

	log.Printf("[Persistence] Cena %q salva (%dx%dx%d)", name, g.W, g.H, g.D)
	return nil
}

// LoadScene tenta recuperar um snapshot de cena pelo nome.
func (s *SceneStore) LoadScene(name string) (*Grid, error) {
	if s == nil || s.DB == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}

	var model SceneModel
	if err := s.DB.First(&model, "name = ?", name).Error; err != nil {
		return nil, err
	}

	var blocks []BlockType
	if err := gob.NewDecoder(bytes.NewReader(model.Data)).Decode(&blocks); err != nil {
		return nil, fmt.Errorf("falha ao decodificar blocos da cena %q: %w", name, err)
	}

	g := NewGridFromBlocks(model.Width, model.Height, model.Depth, blocks)
	if g == nil {
		return nil, fmt.Errorf("snapshot corrompido da cena %q", name)
	}
	return g, nil
}

// SaveColors persiste as cores personalizadas de blocos (upsert em lote).
func (s *SceneStore) SaveColors(colors map[BlockType][3]uint8) error {
	if s == nil || s.DB == nil || len(colors) == 0 {
		return nil
	}

	var models []ColorModel
	for b, c := range colors {
		models = append(models, ColorModel{Block: uint8(b), R: c[0], G: c[1], B: c[2]})
	}
	if err := s.DB.Save(&models).Error; err != nil {
		return fmt.Errorf("falha ao persistir cores: %w", err)
	}
	log.Printf("[Persistence] %d cores personalizadas salvas", len(models))
	return nil
}

// LoadColors carrega todas as cores personalizadas salvas.
func (s *SceneStore) LoadColors() (map[BlockType][3]uint8, error) {
	if s == nil || s.DB == nil {
		return nil, fmt.Errorf("banco de dados não inicializado")
	}

	var models []ColorModel
	if err := s.DB.Find(&models).Error; err != nil {
		return nil, err
	}

	colors := make(map[BlockType][3]uint8, len(models))
	for _, m := range models {
		if int(m.Block) >= BlockCount {
			continue
		}
		colors[BlockType(m.Block)] = [3]uint8{m.R, m.G, m.B}
	}
	return colors, nil
}
