package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"vintique/internal/global"
	"vintique/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureDatabaseAndCollections đảm bảo database và các collection cần thiết tồn tại.
// Collection nào chưa có sẽ được tạo mới.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	dbName := global.ServerConfig.MongoDB_DBName

	// Context tổng 30 giây để duyệt tất cả collections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	// Lấy danh sách tên collection từ struct CollectionNames
	collections := []string{}
	v := reflect.ValueOf(global.MongoDB_ColNames)
	for i := 0; i < v.NumField(); i++ {
		collections = append(collections, v.Field(i).String())
	}

	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	existing := make(map[string]bool, len(collList))
	for _, name := range collList {
		existing[name] = true
	}

	for _, collectionName := range collections {
		if existing[collectionName] {
			continue
		}
		logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
		if err := db.CreateCollection(ctx, collectionName); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// parseOrder trích xuất thứ tự sắp xếp từ tag (1 hoặc -1)
func parseOrder(tag string) int {
	if strings.Contains(tag, "order:-1") {
		return -1
	}
	return 1
}

// parseIndexTag phân tách tag index thành danh sách cấu hình.
// Format: "single;compound:group_name" hoặc "unique,sparse"
func parseIndexTag(tag string) []map[string]string {
	parts := strings.Split(tag, ";")
	result := []map[string]string{}

	for _, part := range parts {
		subParts := strings.Split(part, ",")
		entry := map[string]string{}
		for _, subPart := range subParts {
			kv := strings.Split(subPart, ":")
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}

	return result
}

// createIndexIfMissing tạo index nếu chưa tồn tại với cùng tên
func createIndexIfMissing(
	ctx context.Context,
	collection *mongo.Collection,
	existingIndexes map[string]bson.M,
	indexName string,
	keys bson.D,
	opts *options.IndexOptions,
) error {
	if _, exists := existingIndexes[indexName]; exists {
		return nil
	}

	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}); err != nil {
		return fmt.Errorf("không thể tạo index %s: %w", indexName, err)
	}
	logger.GetAppLogger().Infof("Đã tạo index %s cho collection %s", indexName, collection.Name())
	return nil
}

// CreateIndexes đọc tag `index:` trên các field của model và tạo index tương ứng.
// Hỗ trợ: single, unique (+sparse), text, compound:<group_name>.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("không thể lấy danh sách index: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bson.M{}
	for cursor.Next(ctx) {
		var indexInfo bson.M
		if err := cursor.Decode(&indexInfo); err != nil {
			return fmt.Errorf("không thể giải mã thông tin index: %w", err)
		}
		if name, ok := indexInfo["name"].(string); ok {
			existingIndexes[name] = indexInfo
		}
	}

	compoundGroups := map[string]bson.D{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, config := range parseIndexTag(tag) {
			if _, ok := config["text"]; ok {
				keys := bson.D{{Key: bsonField, Value: "text"}}
				indexName := bsonField + "_text"
				if err := createIndexIfMissing(ctx, collection, existingIndexes, indexName, keys, options.Index().SetName(indexName)); err != nil {
					return err
				}
			}

			if _, ok := config["single"]; ok {
				keys := bson.D{{Key: bsonField, Value: parseOrder(tag)}}
				indexName := bsonField + "_single"
				if err := createIndexIfMissing(ctx, collection, existingIndexes, indexName, keys, options.Index().SetName(indexName)); err != nil {
					return err
				}
			}

			if _, ok := config["unique"]; ok {
				keys := bson.D{{Key: bsonField, Value: 1}}
				indexName := bsonField + "_unique"
				opts := options.Index().SetName(indexName).SetUnique(true)
				// Sparse cho phép nhiều document không có field này
				if _, hasSparse := config["sparse"]; hasSparse {
					opts = opts.SetSparse(true)
				}
				if err := createIndexIfMissing(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if groupName, ok := config["compound"]; ok && groupName != "" {
				compoundGroups[groupName] = append(compoundGroups[groupName], bson.E{Key: bsonField, Value: parseOrder(tag)})
			}
		}
	}

	for groupName, fields := range compoundGroups {
		if err := createIndexIfMissing(ctx, collection, existingIndexes, groupName, fields, options.Index().SetName(groupName)); err != nil {
			return err
		}
	}

	return nil
}
