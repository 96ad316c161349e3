package domain

// AssetType is the advisory category of an asset. The server stores whatever
// the client sends; KnownAssetTypes lists the values the form offers.
type AssetType string

const (
	AssetTypeSetPiece  AssetType = "setpiece"
	AssetTypeCharacter AssetType = "character"
	AssetTypeProp      AssetType = "prop"
	AssetTypeFX        AssetType = "fx"
	AssetTypeSet       AssetType = "set"
	AssetTypeCamera    AssetType = "camera"
)

var KnownAssetTypes = []AssetType{
	AssetTypeSetPiece,
	AssetTypeCharacter,
	AssetTypeProp,
	AssetTypeFX,
	AssetTypeSet,
	AssetTypeCamera,
}

func (t AssetType) Known() bool {
	for _, k := range KnownAssetTypes {
		if t == k {
			return true
		}
	}
	return false
}

// StatusTODO is the status every new asset starts with.
const StatusTODO = "TODO"

type Asset struct {
	Name        string    `json:"name"`
	Type        AssetType `json:"type"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Status      string    `json:"status"`
}

type Task struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Assets      []string `json:"assets"`
}
