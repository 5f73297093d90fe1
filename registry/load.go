package registry

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
)

//go:embed data/receiver_info.json data/opacity.json
var dataFiles embed.FS

func loadEmbeddedReceivers() (map[model.Receiver]*model.ReceiverInfo, error) {
	data, err := dataFiles.ReadFile("data/receiver_info.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded receiver table: %w", err)
	}
	return decodeReceivers(data)
}

func loadEmbeddedOpacity() (*OpacityGrid, error) {
	data, err := dataFiles.ReadFile("data/opacity.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded opacity grid: %w", err)
	}
	return decodeOpacity(data)
}

// ReadReceivers decodes a receiver table in the same JSON format as the
// embedded default, so that a calibration pipeline can maintain the
// table outside the binary.
func ReadReceivers(r io.Reader) (map[model.Receiver]*model.ReceiverInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read receiver table: %w", err)
	}
	return decodeReceivers(data)
}

// ReadOpacity decodes an opacity grid produced by the atmospheric
// model pipeline.
func ReadOpacity(r io.Reader) (*OpacityGrid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read opacity grid: %w", err)
	}
	return decodeOpacity(data)
}

func decodeReceivers(data []byte) (map[model.Receiver]*model.ReceiverInfo, error) {
	var byName map[string]*model.ReceiverInfo
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, fmt.Errorf("decode receiver table: %w", err)
	}

	receivers := make(map[model.Receiver]*model.ReceiverInfo, len(byName))
	for _, receiver := range model.AllReceivers() {
		info, ok := byName[receiver.String()]
		if !ok {
			return nil, fmt.Errorf("could not find receiver information for %q", receiver)
		}
		receivers[receiver] = info
	}
	return receivers, nil
}

type opacityFileEntry struct {
	Tau225 float64      `json:"Tau225"`
	Points [][2]float64 `json:"Points"`
}

func decodeOpacity(data []byte) (*OpacityGrid, error) {
	var entries []opacityFileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode opacity grid: %w", err)
	}

	grid := &OpacityGrid{Tables: make([]OpacityTable, 0, len(entries))}
	for _, entry := range entries {
		table := OpacityTable{
			Tau225: entry.Tau225,
			Points: make([]OpacityPoint, 0, len(entry.Points)),
		}
		for _, point := range entry.Points {
			table.Points = append(table.Points, OpacityPoint{
				FreqGHz: point[0],
				Tau:     point[1],
			})
		}
		grid.Tables = append(grid.Tables, table)
	}
	return grid, nil
}
